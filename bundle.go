package sitegen

// List caps applied after de-duplication.
const (
	MaxServices    = 6
	MaxTeamMembers = 8
)

// Company holds the extracted company identity.
type Company struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
}

// Hero holds the main banner content.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Text     string `json:"text"`
}

// Service is one entry in the services section.
type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
}

// TeamMember is one entry in the team section.
type TeamMember struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	Description string `json:"description"`
	ImageRef    string `json:"imageRef,omitempty"`
}

// Contact holds extracted contact details.
type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Empty reports whether no contact field is set.
func (c Contact) Empty() bool {
	return c.Phone == "" && c.Email == "" && c.Address == ""
}

// ImageRef points at an uploaded image and the metadata needed to place
// it in the output document.
type ImageRef struct {
	Name        string  `json:"name"`
	Ref         string  `json:"ref"`
	AspectRatio float64 `json:"aspectRatio,omitempty"`
}

// ImageSet groups uploaded images by their assigned role.
type ImageSet struct {
	Logos   []ImageRef `json:"logos,omitempty"`
	Banners []ImageRef `json:"banners,omitempty"`
	Team    []ImageRef `json:"team,omitempty"`
	General []ImageRef `json:"general,omitempty"`
}

// Count returns the total number of images across all roles.
func (s ImageSet) Count() int {
	return len(s.Logos) + len(s.Banners) + len(s.Team) + len(s.General)
}

// PartialContent is the best-effort extraction result for a single text
// artifact. Absent matches leave fields empty.
type PartialContent struct {
	CompanyName string       `json:"companyName,omitempty"`
	HeroTitle   string       `json:"heroTitle,omitempty"`
	HeroText    string       `json:"heroText,omitempty"`
	Services    []Service    `json:"services,omitempty"`
	Team        []TeamMember `json:"team,omitempty"`
	Contact     Contact      `json:"contact"`
}

// Empty reports whether the extraction found nothing at all.
func (p *PartialContent) Empty() bool {
	return p == nil || (p.CompanyName == "" && p.HeroTitle == "" && p.HeroText == "" &&
		len(p.Services) == 0 && len(p.Team) == 0 && p.Contact.Empty())
}

// ContentBundle is the aggregated, structured content ready for
// injection. A bundle is built fresh per generation request and owned by
// the single injection that consumes it.
type ContentBundle struct {
	Company  Company   `json:"company"`
	Hero     Hero      `json:"hero"`
	Services []Service `json:"services"`
	Team     []TeamMember `json:"team"`
	Contact  Contact   `json:"contact"`
	Images   ImageSet  `json:"images"`

	// Unmatched lists names of artifacts no classifier could place.
	Unmatched []string `json:"unmatched,omitempty"`

	// Confidence is a diagnostic coverage metric. No control flow
	// depends on it.
	Confidence float64 `json:"confidence"`
}

// Merge folds a partial extraction into the bundle. Scalar fields follow
// first-non-empty-wins across artifacts; list fields are concatenated.
// De-duplication and caps are applied once by Finalize.
func (b *ContentBundle) Merge(p *PartialContent) {
	if p == nil {
		return
	}
	if b.Company.Name == "" {
		b.Company.Name = p.CompanyName
	}
	if b.Hero.Title == "" {
		b.Hero.Title = p.HeroTitle
	}
	if b.Hero.Text == "" {
		b.Hero.Text = p.HeroText
	}
	if b.Contact.Phone == "" {
		b.Contact.Phone = p.Contact.Phone
	}
	if b.Contact.Email == "" {
		b.Contact.Email = p.Contact.Email
	}
	if b.Contact.Address == "" {
		b.Contact.Address = p.Contact.Address
	}
	b.Services = append(b.Services, p.Services...)
	b.Team = append(b.Team, p.Team...)
}

// Fill copies values from other into unset fields of b. Used to back an
// externally extracted bundle with locally aggregated content, keeping
// first-non-empty-wins semantics with b taking precedence.
func (b *ContentBundle) Fill(other *ContentBundle) {
	if other == nil {
		return
	}
	if b.Company.Name == "" {
		b.Company.Name = other.Company.Name
	}
	if b.Company.Description == "" {
		b.Company.Description = other.Company.Description
	}
	if b.Company.Industry == "" {
		b.Company.Industry = other.Company.Industry
	}
	if b.Hero.Title == "" {
		b.Hero.Title = other.Hero.Title
	}
	if b.Hero.Subtitle == "" {
		b.Hero.Subtitle = other.Hero.Subtitle
	}
	if b.Hero.Text == "" {
		b.Hero.Text = other.Hero.Text
	}
	if b.Contact.Phone == "" {
		b.Contact.Phone = other.Contact.Phone
	}
	if b.Contact.Email == "" {
		b.Contact.Email = other.Contact.Email
	}
	if b.Contact.Address == "" {
		b.Contact.Address = other.Contact.Address
	}
	if len(b.Services) == 0 {
		b.Services = other.Services
	}
	if len(b.Team) == 0 {
		b.Team = other.Team
	}
	if b.Images.Count() == 0 {
		b.Images = other.Images
	}
	if len(b.Unmatched) == 0 {
		b.Unmatched = other.Unmatched
	}
	if b.Confidence == 0 {
		b.Confidence = other.Confidence
	}
}

// Finalize de-duplicates and caps the list fields and fills derived
// defaults. Services are deduplicated by exact title, team members by
// exact name (both case-sensitive), preserving encounter order.
func (b *ContentBundle) Finalize() {
	b.Services = dedupeServices(b.Services, MaxServices)
	b.Team = dedupeTeam(b.Team, MaxTeamMembers)
	b.pairTeamImages()

	if b.Hero.Title == "" && b.Company.Name != "" {
		b.Hero.Title = b.Company.Name + "에 오신 것을 환영합니다"
	}
	if b.Hero.Text == "" && len(b.Services) > 0 {
		b.Hero.Text = "최고 품질의 " + b.Services[0].Title + " 서비스를 제공합니다."
	}
}

// pairTeamImages assigns team-role images to members without one, in
// order, and creates placeholder members for leftover images.
func (b *ContentBundle) pairTeamImages() {
	images := b.Images.Team
	next := 0
	for i := range b.Team {
		if next >= len(images) {
			return
		}
		if b.Team[i].ImageRef == "" {
			b.Team[i].ImageRef = images[next].Ref
			next++
		}
	}
	for ; next < len(images) && len(b.Team) < MaxTeamMembers; next++ {
		b.Team = append(b.Team, TeamMember{
			Name:        nameFromFilename(images[next].Name),
			Position:    "팀원",
			Description: "함께 성장하는 우수한 인재입니다.",
			ImageRef:    images[next].Ref,
		})
	}
}

// AppliedSections lists the sections the bundle can populate.
func (b *ContentBundle) AppliedSections() []string {
	var sections []string
	if b.Hero.Title != "" {
		sections = append(sections, string(SectionHero))
	}
	if len(b.Services) > 0 {
		sections = append(sections, string(SectionServices))
	}
	if len(b.Team) > 0 {
		sections = append(sections, string(SectionTeam))
	}
	if !b.Contact.Empty() {
		sections = append(sections, string(SectionContact))
	}
	if len(b.Images.General) > 0 {
		sections = append(sections, string(SectionGallery))
	}
	return sections
}

// Summary describes a generation result for callers and storage.
type Summary struct {
	CompanyName     string   `json:"companyName"`
	SectionsApplied []string `json:"sectionsApplied"`
	TotalContent    Totals   `json:"totalContent"`
}

// Totals holds content counts for a generation.
type Totals struct {
	Services    int `json:"services"`
	TeamMembers int `json:"teamMembers"`
	Images      int `json:"images"`
}

// Summarize builds the caller-facing summary of the bundle.
func (b *ContentBundle) Summarize() Summary {
	return Summary{
		CompanyName:     b.Company.Name,
		SectionsApplied: b.AppliedSections(),
		TotalContent: Totals{
			Services:    len(b.Services),
			TeamMembers: len(b.Team),
			Images:      b.Images.Count(),
		},
	}
}

func dedupeServices(services []Service, max int) []Service {
	seen := make(map[string]bool, len(services))
	out := make([]Service, 0, len(services))
	for _, s := range services {
		if s.Title == "" || seen[s.Title] {
			continue
		}
		seen[s.Title] = true
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}

func dedupeTeam(team []TeamMember, max int) []TeamMember {
	seen := make(map[string]bool, len(team))
	out := make([]TeamMember, 0, len(team))
	for _, m := range team {
		if m.Name == "" || seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		out = append(out, m)
		if len(out) == max {
			break
		}
	}
	return out
}
