package render

import (
	"fmt"
	"strings"

	"github.com/mithrel/profilemd/pkg/models"
)

const (
	statsURL     = "https://github-readme-stats.vercel.app/api?username=%s&show_icons=true&theme=gotham&hide_border=true&count_private=true"
	streakURL    = "https://github-readme-streak-stats.herokuapp.com/?user=%s&theme=gotham&hide_border=true"
	topLangsURL  = "https://github-readme-stats.vercel.app/api/top-langs/?username=%s&layout=compact&theme=gotham&hide_border=true"
	iconURL      = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/%s/%s-original.svg"
	badgeURL     = "https://img.shields.io/badge/%s-%s?style=for-the-badge&logo=%s&logoColor=white"
	badgeColor   = "24292e"
	fallbackName = "User"
	divider      = "<br/>\n"
)

// StatsURL returns the GitHub stats card image URL for username.
func StatsURL(username string) string { return fmt.Sprintf(statsURL, username) }

// StreakURL returns the contribution streak image URL for username.
func StreakURL(username string) string { return fmt.Sprintf(streakURL, username) }

// TopLanguagesURL returns the top languages card image URL for username.
func TopLanguagesURL(username string) string { return fmt.Sprintf(topLangsURL, username) }

// IconURL returns the devicon SVG URL for a skill.
func IconURL(skill string) string {
	name := IconName(skill)
	return fmt.Sprintf(iconURL, name, name)
}

// BadgeURL returns the shields.io badge URL for a social platform.
func BadgeURL(p models.Platform) string {
	return fmt.Sprintf(badgeURL, p, badgeColor, p)
}

// Markdown renders a profile into a GitHub profile README.
// It is a pure function of p and never fails.
func Markdown(p models.Profile) string {
	t := LabelsFor(p.Language)
	var parts []string

	name := p.Name
	if name == "" {
		name = fallbackName
	}
	subtitle := p.Subtitle
	if subtitle == "" {
		subtitle = t.DefaultSubtitle
	}
	parts = append(parts, fmt.Sprintf("\n<h1 align=\"center\">%s %s 👋</h1>\n<h3 align=\"center\">%s</h3>\n", t.Greeting, name, subtitle))

	if p.Bio != "" {
		parts = append(parts, fmt.Sprintf("\n<p align=\"center\"> %s </p>\n", p.Bio))
	}

	parts = append(parts, divider)

	if p.Username != "" && p.Addons.Any() {
		parts = append(parts, statsBlock(p.Username, p.Addons), divider)
	}

	if !p.Skills.Empty() {
		parts = append(parts, "### "+t.Tech+"\n", "<div align=\"center\">\n")
		for _, skill := range p.Skills.All() {
			parts = append(parts, fmt.Sprintf("  <img src=\"%s\" height=\"40\" alt=\"%s\" width=\"40\" style=\"margin: 4px;\"/>", IconURL(skill), skill))
		}
		parts = append(parts, "\n</div>\n", divider)
	}

	if len(p.Projects) > 0 {
		rows := make([]string, 0, len(p.Projects))
		for _, pr := range p.Projects {
			link := pr.Link
			if link == "" {
				link = "#"
			}
			rows = append(rows, fmt.Sprintf("- [**%s**](%s) - %s", pr.Name, link, pr.Description))
		}
		parts = append(parts, "### "+t.Projects+"\n", strings.Join(rows, "\n")+"\n", divider)
	}

	parts = append(parts, "<div align=\"center\">\n")
	for _, pl := range models.Platforms() {
		link := p.Socials.Get(pl)
		if link == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("  <a href=\"%s\" target=\"_blank\"><img src=\"%s\" alt=\"%s\" /></a>", link, BadgeURL(pl), pl))
	}
	parts = append(parts, "\n</div>\n")

	return strings.Join(parts, "\n")
}

// statsBlock renders the stats and streak cards plus the top languages card.
// Trophies have no image; a trophies-only profile yields an empty div.
func statsBlock(username string, a models.Addons) string {
	var b strings.Builder
	b.WriteString("<div align=\"center\">\n")
	if a.DisplayStats {
		fmt.Fprintf(&b, "  <img src=\"%s\" height=\"180\" alt=\"stats\" />\n", StatsURL(username))
	}
	if a.DisplayStreak {
		fmt.Fprintf(&b, "  <img src=\"%s\" height=\"180\" alt=\"streak\" />\n", StreakURL(username))
	}
	b.WriteString("</div>\n")
	if a.DisplayStats {
		fmt.Fprintf(&b, "<div align=\"center\">\n  <img src=\"%s\" height=\"180\" alt=\"languages\" />\n</div>\n", TopLanguagesURL(username))
	}
	return b.String()
}
