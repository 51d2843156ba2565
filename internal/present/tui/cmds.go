package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mithrel/profilemd/internal/editor"
	"github.com/mithrel/profilemd/internal/store"
)

const noticeTTL = 2 * time.Second

var errClipboardDisabled = errors.New("clipboard is disabled in config")

// copyResultMsg conveys the outcome of a clipboard write back to Update.
type copyResultMsg struct {
	err error
}

// noticeExpiredMsg closes the notification with the matching id.
type noticeExpiredMsg struct {
	id int
}

// editorFinishedMsg is sent once the external editor exits.
type editorFinishedMsg struct {
	path    string
	initial []byte
	err     error
}

func copyCmd(md string, enabled bool) tea.Cmd {
	return func() tea.Msg {
		if !enabled {
			return copyResultMsg{err: errClipboardDisabled}
		}
		if clipboard.Unsupported {
			return copyResultMsg{err: errors.New("no clipboard utility available")}
		}
		return copyResultMsg{err: clipboard.WriteAll(md)}
	}
}

func noticeTimeoutCmd(id int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

// openEditor suspends the program and edits the identity fields and bio in
// the user's editor.
func (m *model) openEditor() tea.Cmd {
	path, err := editor.PathFor("profile")
	if err != nil {
		m.status = fmt.Sprintf("Editor failed: %v", err)
		return nil
	}
	initial := []byte(editor.ComposeProfile(m.st.Snapshot()))
	if err := editor.PrepareAt(path, initial); err != nil {
		m.status = fmt.Sprintf("Editor failed: %v", err)
		return nil
	}
	cmd, err := editor.Command(m.opts.EditorCommand, path)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, initial: initial, err: err}
	})
}

func (m *model) applyEditorResult(msg editorFinishedMsg) {
	if msg.err != nil {
		m.status = fmt.Sprintf("Editor failed: %v", msg.err)
		return
	}
	out, changed, err := editor.ReadBack(msg.path, msg.initial)
	if err != nil {
		m.status = fmt.Sprintf("Editor failed: %v", err)
		return
	}
	if !changed {
		m.status = "No changes"
		return
	}
	p := editor.ParseEditedProfile(string(out), m.st.Snapshot())
	m.st.SetField(store.FieldName, p.Name)
	m.st.SetField(store.FieldSubtitle, p.Subtitle)
	m.st.SetField(store.FieldUsername, p.Username)
	m.st.SetField(store.FieldLanguage, string(p.Language))
	m.st.SetField(store.FieldBio, p.Bio)
	m.syncFromStore()
	m.applyFocus()
	m.refreshPreview()
	m.status = "Profile updated from editor"
}
