package sitegen

import (
	"regexp"
	"strings"
)

// Extraction limits.
const (
	// maxHeroTextLen caps the hero body text per text artifact.
	maxHeroTextLen = 300

	// maxMemberDescLen caps a team member description.
	maxMemberDescLen = 150

	// maxPerTextEntries caps services and team members extracted from a
	// single text. Bundle-level caps apply separately after merging.
	maxPerTextEntries = 6
)

var (
	// companyNameRe matches a noun phrase followed by a corporate suffix.
	companyNameRe = regexp.MustCompile(`([가-힣\w][가-힣\w\s]*?)\s*(?:주식회사|㈜|회사|기업|그룹|코퍼레이션|Corporation|Corp|Inc|LLC|Ltd)`)

	// phoneRe matches Korean-style phone numbers such as 02-123-4567.
	phoneRe = regexp.MustCompile(`\d{2,3}[-\s]?\d{3,4}[-\s]?\d{4}`)

	// emailRe is a deliberately loose RFC-light email pattern.
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// addressRe matches a major Korean city name followed eventually by a
	// building or unit marker.
	addressRe = regexp.MustCompile(`(?:서울|부산|대구|인천|광주|대전|울산|세종|수원|고양|용인|창원|성남|청주|전주|안산|천안|평택|안양|포항|시흥|의정부|원주|춘천|진주|순천|목포|여수|구미|김해|제주)[\s\S]*?(?:\d+층|\d+호|번지|\d+동|\d+-\d+)`)

	// serviceItemRe matches a numbered or bulleted list item start.
	serviceItemRe = regexp.MustCompile(`^(?:\d+\.|[-*•])`)

	// serviceMarkerRe strips list markers from a service title.
	serviceMarkerRe = regexp.MustCompile(`^[\d.\-*•\s]+`)

	// headingLineRe matches decorative heading/divider lines that never
	// belong to a service description.
	headingLineRe = regexp.MustCompile(`^[=\-#]`)

	// markupRe strips leading markup characters from a hero title line.
	markupRe = regexp.MustCompile(`[=\-#*]`)

	// personNameRe matches a short person name: 2-4 Hangul syllables or
	// 2-20 Latin letters and spaces.
	personNameRe = regexp.MustCompile(`[가-힣]{2,4}|[A-Za-z][A-Za-z\s]{1,19}`)

	// blankLineRe splits text into blocks on blank-line boundaries.
	blankLineRe = regexp.MustCompile(`\n\s*\n`)
)

// positionTitles is the fixed vocabulary searched for a team member's
// position, in match-preference order.
var positionTitles = []string{
	"대표이사", "이사", "팀장", "부장", "과장",
	"CEO", "CTO", "CFO", "Director", "Manager",
}

// Extract parses free-form text into structured fields. Every
// sub-extraction is independently best-effort: absence of a match leaves
// the field empty, and Extract never fails. Given the same input the
// result is deterministic.
func Extract(text string) *PartialContent {
	p := &PartialContent{
		CompanyName: ExtractCompanyName(text),
		Services:    ExtractServices(text),
		Team:        ExtractTeamMembers(text),
		Contact:     ExtractContact(text),
	}
	p.HeroTitle, p.HeroText = extractHero(text)
	return p
}

// ExtractCompanyName returns the first noun phrase followed by a
// corporate suffix token, or "" when none matches.
func ExtractCompanyName(text string) string {
	m := companyNameRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractHero derives a hero title from the first non-empty line and a
// body from the remaining lines, truncated with an ellipsis marker.
func extractHero(text string) (title, body string) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return "", ""
	}

	title = strings.TrimSpace(markupRe.ReplaceAllString(lines[0], ""))
	body = truncate(strings.Join(lines[1:], " "), maxHeroTextLen)
	return title, body
}

// ExtractServices parses numbered or bulleted list items into service
// records. A list-item line starts a new service with the remainder as
// its title; following plain lines are space-joined into the description
// until the next item or end of input. At most 6 entries are returned in
// encounter order.
func ExtractServices(text string) []Service {
	var services []Service
	var current *Service

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if serviceItemRe.MatchString(line) {
			if current != nil {
				services = append(services, *current)
			}
			current = &Service{Title: strings.TrimSpace(serviceMarkerRe.ReplaceAllString(line, ""))}
			continue
		}

		if current != nil && !headingLineRe.MatchString(line) {
			if current.Description != "" {
				current.Description += " "
			}
			current.Description += line
		}
	}
	if current != nil {
		services = append(services, *current)
	}

	if len(services) > maxPerTextEntries {
		services = services[:maxPerTextEntries]
	}
	return services
}

// ExtractTeamMembers splits text into blank-line separated blocks and
// parses blocks whose first line looks like a person name. The position
// comes from a fixed title vocabulary, defaulting to a generic
// placeholder. At most 6 entries are returned.
func ExtractTeamMembers(text string) []TeamMember {
	var members []TeamMember

	for _, block := range blankLineRe.Split(text, -1) {
		var lines []string
		for _, line := range strings.Split(block, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) < 2 {
			continue
		}

		name := personNameRe.FindString(lines[0])
		if name == "" {
			continue
		}

		members = append(members, TeamMember{
			Name:        strings.TrimSpace(name),
			Position:    extractPosition(block),
			Description: truncate(strings.Join(lines[1:], " "), maxMemberDescLen),
		})
		if len(members) == maxPerTextEntries {
			break
		}
	}
	return members
}

// extractPosition searches the block for any known position title.
func extractPosition(block string) string {
	for _, title := range positionTitles {
		if strings.Contains(block, title) {
			return title
		}
	}
	return "구성원"
}

// ExtractContact matches phone, email, and address patterns
// independently. Each field keeps its first match only.
func ExtractContact(text string) Contact {
	return Contact{
		Phone:   phoneRe.FindString(text),
		Email:   emailRe.FindString(text),
		Address: strings.TrimSpace(addressRe.FindString(text)),
	}
}

// nameFromFilename extracts a person name from an image filename,
// falling back to a generic placeholder.
func nameFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filenameExt(filename))
	if name := personNameRe.FindString(base); name != "" {
		return strings.TrimSpace(name)
	}
	return "팀원"
}

func filenameExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

// truncate shortens s to at most n runes, appending an ellipsis marker
// when content was cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
