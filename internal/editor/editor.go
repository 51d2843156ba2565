package editor

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mithrel/profilemd/pkg/models"
)

const (
	NamePrefix     = "Name: "
	SubtitlePrefix = "Subtitle: "
	UsernamePrefix = "Username: "
	LanguagePrefix = "Language: "
	Separator      = "---"
)

// ComposeProfile creates the text presented to the editor.
func ComposeProfile(p models.Profile) string {
	var b bytes.Buffer
	b.WriteString("# profilemd profile\n")
	b.WriteString("# Lines starting with '#' are ignored.\n")
	b.WriteString("# Language is en or pt-br. After '---', write the bio.\n")
	b.WriteString(NamePrefix + p.Name + "\n")
	b.WriteString(SubtitlePrefix + p.Subtitle + "\n")
	b.WriteString(UsernamePrefix + p.Username + "\n")
	b.WriteString(LanguagePrefix + string(p.Language) + "\n")
	b.WriteString(Separator + "\n")
	if p.Bio != "" {
		bio := p.Bio
		if !strings.HasSuffix(bio, "\n") {
			bio += "\n"
		}
		b.WriteString(bio)
	}
	return b.String()
}

// ParseEditedProfile applies the editor output on top of base. Header lines
// that are missing leave the corresponding field untouched; the bio is always
// replaced by whatever follows the separator.
func ParseEditedProfile(s string, base models.Profile) models.Profile {
	out := base.Clone()
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	inBody := false
	var bodyLines []string
	for sc.Scan() {
		line := sc.Text()
		if inBody {
			bodyLines = append(bodyLines, line)
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if strings.TrimSpace(line) == Separator {
			inBody = true
			continue
		}
		if v, ok := headerValue(line, NamePrefix); ok {
			out.Name = v
		} else if v, ok := headerValue(line, SubtitlePrefix); ok {
			out.Subtitle = v
		} else if v, ok := headerValue(line, UsernamePrefix); ok {
			out.Username = v
		} else if v, ok := headerValue(line, LanguagePrefix); ok && v != "" {
			out.Language = models.Locale(strings.ToLower(v))
		}
	}
	out.Bio = strings.TrimSpace(strings.Join(bodyLines, "\n"))
	return out
}

func headerValue(line, prefix string) (string, bool) {
	key := strings.TrimSpace(prefix)
	if !strings.HasPrefix(line, key) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, key)), true
}

// PreferredEditor finds a suitable editor: the configured command, then
// $VISUAL, $EDITOR and common terminal editors.
func PreferredEditor(configured string) (string, error) {
	if c := strings.TrimSpace(configured); c != "" {
		return c, nil
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v, nil
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e, nil
	}
	for _, cand := range []string{"nvim", "vim", "vi"} {
		if p, err := exec.LookPath(cand); err == nil {
			return p, nil
		}
	}
	return "", errors.New("no editor found; set editor.command, $EDITOR or $VISUAL")
}

// PathFor returns a temp file path for an edit session called name.
func PathFor(name string) (string, error) {
	file := sanitize(name) + ".profilemd.md"
	if xdg := os.Getenv("XDG_RUNTIME_DIR"); xdg != "" {
		return filepath.Join(xdg, "profilemd", file), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "profilemd", "edit", file), nil
}

func sanitize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "profile"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

func writeFile0600(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, fs.FileMode(0o600))
}

// PrepareAt writes the initial content to the given path with secure perms.
func PrepareAt(path string, initial []byte) error {
	return writeFile0600(path, initial)
}

// Command builds the editor process for path. Editor strings with flags
// (e.g. "code --wait") run through a shell wrapper.
func Command(configured, path string) (*exec.Cmd, error) {
	ed, err := PreferredEditor(configured)
	if err != nil {
		return nil, err
	}
	if strings.ContainsAny(ed, " \t") {
		cmd := exec.Command("sh", "-c", "$EDITORCMD \"$FILEPATH\"")
		cmd.Env = append(os.Environ(), "EDITORCMD="+ed, "FILEPATH="+path)
		return cmd, nil
	}
	return exec.Command(ed, path), nil
}

// OpenAt opens the editor at path with initial content and returns final bytes and whether it changed.
func OpenAt(configured, path string, initial []byte) (final []byte, changed bool, err error) {
	if err := writeFile0600(path, initial); err != nil {
		return nil, false, err
	}
	cmd, err := Command(configured, path)
	if err != nil {
		return nil, false, err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, false, err
	}
	return ReadBack(path, initial)
}

// ReadBack reads the edited file and removes it.
func ReadBack(path string, initial []byte) ([]byte, bool, error) {
	out, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	_ = os.Remove(path)
	return out, !bytes.Equal(out, initial), nil
}
