package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/profilemd/pkg/models"
)

func emptyProfile() models.Profile {
	return models.Profile{}
}

func TestMarkdownEmptyProfile(t *testing.T) {
	md := Markdown(emptyProfile())
	want := "\n<h1 align=\"center\">Hi, I'm User 👋</h1>\n<h3 align=\"center\">A passionate developer from Planet Earth</h3>\n" +
		"\n<br/>\n" +
		"\n<div align=\"center\">\n" +
		"\n\n</div>\n"
	require.Equal(t, want, md)
}

func TestMarkdownIsIdempotent(t *testing.T) {
	p := models.Default()
	p.Name = "Ada"
	p.Username = "ada"
	p.Skills.Languages = []string{"Go", "C++"}
	p.Socials.GitHub = "https://github.com/ada"
	require.Equal(t, Markdown(p), Markdown(p))
}

func TestMarkdownHeaderDefaults(t *testing.T) {
	p := models.Default()
	p.Name = "Ada"
	md := Markdown(p)
	assert.Contains(t, md, "<h1 align=\"center\">Hi, I'm Ada 👋</h1>")
	assert.Contains(t, md, "<h3 align=\"center\">A passionate developer from Planet Earth</h3>")
	assert.NotContains(t, md, "<p align=\"center\">")
}

func TestMarkdownLocales(t *testing.T) {
	p := models.Default()
	p.Language = models.LocalePTBR
	p.Skills.Tools = []string{"Git"}
	md := Markdown(p)
	assert.Contains(t, md, "Olá, eu sou User 👋")
	assert.Contains(t, md, "Um desenvolvedor apaixonado por tecnologia")
	assert.Contains(t, md, "### 🛠️ Tecnologias e Ferramentas")
	assert.Contains(t, md, "### 🚀 Projetos em Destaque")

	p.Language = "fr"
	md = Markdown(p)
	assert.Contains(t, md, "Hi, I'm User 👋")
	assert.Contains(t, md, "### 🛠️ Technologies & Tools")
}

func TestMarkdownBio(t *testing.T) {
	p := models.Default()
	p.Bio = "I build things."
	assert.Contains(t, Markdown(p), "\n<p align=\"center\"> I build things. </p>\n")
}

func TestMarkdownStatsRequireUsername(t *testing.T) {
	p := models.Default()
	p.Addons = models.Addons{DisplayStats: true, DisplayStreak: true, DisplayTrophies: true}
	md := Markdown(p)
	assert.NotContains(t, md, "github-readme-stats")
	assert.NotContains(t, md, "streak-stats")
	assert.NotContains(t, md, "alt=\"stats\"")
}

func TestMarkdownStatsToggles(t *testing.T) {
	p := models.Default()
	p.Username = "ada"

	p.Addons = models.Addons{DisplayStats: true}
	md := Markdown(p)
	assert.Contains(t, md, StatsURL("ada"))
	assert.Contains(t, md, TopLanguagesURL("ada"))
	assert.NotContains(t, md, StreakURL("ada"))

	p.Addons = models.Addons{DisplayStreak: true}
	md = Markdown(p)
	assert.Contains(t, md, "https://github-readme-streak-stats.herokuapp.com/?user=ada&theme=gotham&hide_border=true")
	assert.NotContains(t, md, "top-langs")

	p.Addons = models.Addons{DisplayTrophies: true}
	md = Markdown(p)
	assert.Contains(t, md, "<br/>\n\n<div align=\"center\">\n</div>\n\n<br/>\n")
	assert.NotContains(t, md, "<img src=\"https://github-readme")

	p.Addons = models.Addons{}
	md = Markdown(p)
	assert.Equal(t, 0, strings.Count(md, "height=\"180\""))
}

func TestMarkdownStatsURLs(t *testing.T) {
	assert.Equal(t, "https://github-readme-stats.vercel.app/api?username=u&show_icons=true&theme=gotham&hide_border=true&count_private=true", StatsURL("u"))
	assert.Equal(t, "https://github-readme-stats.vercel.app/api/top-langs/?username=u&layout=compact&theme=gotham&hide_border=true", TopLanguagesURL("u"))
}

func TestMarkdownTechStack(t *testing.T) {
	p := models.Default()
	md := Markdown(p)
	assert.NotContains(t, md, "Technologies & Tools")

	p.Skills.Tools = []string{"Docker"}
	p.Skills.Languages = []string{"C++", "Elixir"}
	p.Skills.Frameworks = []string{"Node.js"}
	md = Markdown(p)
	require.Contains(t, md, "### 🛠️ Technologies & Tools\n")
	assert.Contains(t, md, "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/cplusplus/cplusplus-original.svg")
	assert.Contains(t, md, "icons/elixir/elixir-original.svg")
	assert.Contains(t, md, "alt=\"Node.js\"")

	cpp := strings.Index(md, "cplusplus")
	elixir := strings.Index(md, "icons/elixir")
	node := strings.Index(md, "icons/nodejs")
	docker := strings.Index(md, "icons/docker")
	assert.True(t, cpp < elixir && elixir < node && node < docker, "languages, frameworks, tools in insertion order")
}

func TestMarkdownProjects(t *testing.T) {
	p := models.Default()
	p.Projects[1].Link = "https://example.com"
	p.Projects = append(p.Projects, models.Project{})
	md := Markdown(p)
	assert.Contains(t, md, "### 🚀 Featured Projects\n\n"+
		"- [**Project 1**](#) - A cool project\n"+
		"- [**Project 2**](https://example.com) - Another cool project\n"+
		"- [****](#) - \n")

	p.Projects = nil
	assert.NotContains(t, Markdown(p), "Featured Projects")
}

func TestMarkdownSocials(t *testing.T) {
	p := models.Default()
	p.Socials.Twitter = "https://twitter.com/x"
	md := Markdown(p)
	assert.Equal(t, 1, strings.Count(md, "img.shields.io"))
	assert.Contains(t, md, "  <a href=\"https://twitter.com/x\" target=\"_blank\"><img src=\"https://img.shields.io/badge/twitter-24292e?style=for-the-badge&logo=twitter&logoColor=white\" alt=\"twitter\" /></a>")

	p.Socials.Email = "mailto:ada@example.com"
	p.Socials.GitHub = "https://github.com/ada"
	md = Markdown(p)
	gh := strings.Index(md, "badge/github")
	tw := strings.Index(md, "badge/twitter")
	em := strings.Index(md, "badge/email")
	assert.True(t, gh < tw && tw < em)
}

func TestIconName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"C++", "cplusplus"},
		{"c#", "csharp"},
		{"Node.js", "nodejs"},
		{"Tailwind", "tailwindcss"},
		{"AWS", "amazonwebservices"},
		{"Elixir", "elixir"},
		{"Ruby on Rails", "rubyonrails"},
		{"Vue.js 3", "vuejs3"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := IconName(tc.in); got != tc.want {
			t.Fatalf("IconName(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestLabelsForFallback(t *testing.T) {
	assert.Equal(t, LabelsFor(models.LocaleEN), LabelsFor("de"))
	assert.Equal(t, "Entre em contato", LabelsFor(models.LocalePTBR).Connect)
	assert.Len(t, Locales(), 2)
}
