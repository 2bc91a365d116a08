package sitegen

// Section identifies a destination region of the generated site.
type Section string

// Known sections.
const (
	SectionHero         Section = "hero"
	SectionServices     Section = "services"
	SectionPortfolio    Section = "portfolio"
	SectionTeam         Section = "team"
	SectionTestimonials Section = "testimonials"
	SectionContact      Section = "contact"
	SectionGallery      Section = "gallery"
	SectionNews         Section = "news"
)

// ContentKind filters which media kinds a section accepts.
type ContentKind string

// Accepted content kinds for a section profile.
const (
	KindText  ContentKind = "text"
	KindImage ContentKind = "image"
	KindMixed ContentKind = "mixed"
)

// Accepts reports whether a media kind satisfies the content kind filter.
func (k ContentKind) Accepts(m MediaKind) bool {
	switch k {
	case KindText:
		return m == MediaText
	case KindImage:
		return m == MediaImage
	case KindMixed:
		return m == MediaText || m == MediaImage || m == MediaVideo
	}
	return false
}

// SectionProfile maps a section to its matching keywords, priority
// weight, and accepted content kind.
type SectionProfile struct {
	Section  Section     `yaml:"section"`
	Keywords []string    `yaml:"keywords"`
	Priority int         `yaml:"priority"`
	Kind     ContentKind `yaml:"kind"`
}

// Profiles is an ordered list of section profiles. Order is significant:
// it is the registration order used to break ties when several profiles
// share the same priority weight during filename matching.
type Profiles []SectionProfile

// Validate returns an error if the profile list contains duplicate or
// empty sections.
func (p Profiles) Validate() error {
	seen := make(map[Section]bool, len(p))
	for _, profile := range p {
		if profile.Section == "" {
			return Errorf(EINVALID, "profile section required")
		}
		if seen[profile.Section] {
			return Errorf(EINVALID, "duplicate profile for section %q", profile.Section)
		}
		if len(profile.Keywords) == 0 {
			return Errorf(EINVALID, "profile %q has no keywords", profile.Section)
		}
		seen[profile.Section] = true
	}
	return nil
}

// ByID returns the profile for a section, or nil if none is registered.
func (p Profiles) ByID(section Section) *SectionProfile {
	for i := range p {
		if p[i].Section == section {
			return &p[i]
		}
	}
	return nil
}

// Sections returns the section identifiers in registration order.
func (p Profiles) Sections() []Section {
	out := make([]Section, len(p))
	for i, profile := range p {
		out[i] = profile.Section
	}
	return out
}

// DefaultProfiles returns the built-in bilingual section profiles.
// The slice is freshly allocated so callers may modify their copy.
func DefaultProfiles() Profiles {
	return Profiles{
		{
			Section:  SectionHero,
			Keywords: []string{"회사소개", "메인", "대표", "비전", "미션", "소개", "about", "vision", "mission", "company"},
			Priority: 10,
			Kind:     KindText,
		},
		{
			Section:  SectionServices,
			Keywords: []string{"서비스", "솔루션", "업무", "기능", "제품", "service", "solution", "product", "feature"},
			Priority: 9,
			Kind:     KindText,
		},
		{
			Section:  SectionPortfolio,
			Keywords: []string{"포트폴리오", "프로젝트", "사례", "실적", "결과", "portfolio", "project", "case", "work"},
			Priority: 8,
			Kind:     KindMixed,
		},
		{
			Section:  SectionContact,
			Keywords: []string{"연락처", "주소", "전화", "이메일", "문의", "contact", "address", "phone", "email"},
			Priority: 8,
			Kind:     KindText,
		},
		{
			Section:  SectionTeam,
			Keywords: []string{"팀", "직원", "구성원", "인력", "조직", "team", "staff", "member", "employee"},
			Priority: 7,
			Kind:     KindMixed,
		},
		{
			Section:  SectionTestimonials,
			Keywords: []string{"후기", "리뷰", "평가", "고객", "만족", "review", "testimonial", "feedback", "customer"},
			Priority: 6,
			Kind:     KindText,
		},
		{
			Section:  SectionGallery,
			Keywords: []string{"갤러리", "사진", "이미지", "앨범", "gallery", "photo", "image", "album"},
			Priority: 5,
			Kind:     KindImage,
		},
		{
			Section:  SectionNews,
			Keywords: []string{"뉴스", "소식", "공지", "업데이트", "news", "notice", "update", "announcement"},
			Priority: 4,
			Kind:     KindText,
		},
	}
}
