package sitegen_test

import (
	"testing"

	"github.com/jilee1212/sitegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentBundle_Merge(t *testing.T) {
	t.Parallel()

	t.Run("scalars keep the first non-empty value", func(t *testing.T) {
		t.Parallel()

		b := &sitegen.ContentBundle{}
		b.Merge(&sitegen.PartialContent{CompanyName: "한빛", Contact: sitegen.Contact{Phone: "02-123-4567"}})
		b.Merge(&sitegen.PartialContent{CompanyName: "다른회사", Contact: sitegen.Contact{Phone: "02-999-9999", Email: "a@b.co"}})

		assert.Equal(t, "한빛", b.Company.Name)
		assert.Equal(t, "02-123-4567", b.Contact.Phone)
		assert.Equal(t, "a@b.co", b.Contact.Email)
	})

	t.Run("lists concatenate across partials", func(t *testing.T) {
		t.Parallel()

		b := &sitegen.ContentBundle{}
		b.Merge(&sitegen.PartialContent{Services: []sitegen.Service{{Title: "A"}}})
		b.Merge(&sitegen.PartialContent{Services: []sitegen.Service{{Title: "B"}}})

		assert.Len(t, b.Services, 2)
	})

	t.Run("nil partial is a no-op", func(t *testing.T) {
		t.Parallel()

		b := &sitegen.ContentBundle{}
		b.Merge(nil)

		assert.Empty(t, b.Company.Name)
	})
}

func TestContentBundle_Finalize(t *testing.T) {
	t.Parallel()

	t.Run("dedupes by exact title and caps services", func(t *testing.T) {
		t.Parallel()

		b := &sitegen.ContentBundle{}
		for _, title := range []string{"A", "B", "A", "C", "D", "E", "F", "G", "H"} {
			b.Services = append(b.Services, sitegen.Service{Title: title})
		}
		b.Finalize()

		require.Len(t, b.Services, sitegen.MaxServices)
		assert.Equal(t, "A", b.Services[0].Title)
		assert.Equal(t, "B", b.Services[1].Title)
		assert.Equal(t, "C", b.Services[2].Title)
	})

	t.Run("dedupe is case sensitive", func(t *testing.T) {
		t.Parallel()

		b := &sitegen.ContentBundle{Services: []sitegen.Service{{Title: "web"}, {Title: "Web"}}}
		b.Finalize()

		assert.Len(t, b.Services, 2)
	})

	t.Run("derives hero defaults from company and services", func(t *testing.T) {
		t.Parallel()

		b := &sitegen.ContentBundle{
			Company:  sitegen.Company{Name: "한빛"},
			Services: []sitegen.Service{{Title: "클라우드"}},
		}
		b.Finalize()

		assert.Equal(t, "한빛에 오신 것을 환영합니다", b.Hero.Title)
		assert.Contains(t, b.Hero.Text, "클라우드")
	})

	t.Run("pairs team images with members in order", func(t *testing.T) {
		t.Parallel()

		b := &sitegen.ContentBundle{
			Team: []sitegen.TeamMember{{Name: "김철수"}, {Name: "이영희"}},
			Images: sitegen.ImageSet{Team: []sitegen.ImageRef{
				{Name: "김철수.jpg", Ref: "images/김철수.jpg"},
			}},
		}
		b.Finalize()

		assert.Equal(t, "images/김철수.jpg", b.Team[0].ImageRef)
		assert.Empty(t, b.Team[1].ImageRef)
	})
}

func TestContentBundle_Fill(t *testing.T) {
	t.Parallel()

	external := &sitegen.ContentBundle{
		Company:  sitegen.Company{Name: "한빛"},
		Services: []sitegen.Service{{Title: "컨설팅"}},
	}
	local := &sitegen.ContentBundle{
		Company: sitegen.Company{Name: "무시됨", Description: "로컬 설명"},
		Contact: sitegen.Contact{Email: "info@hanbit.co.kr"},
		Images:  sitegen.ImageSet{Logos: []sitegen.ImageRef{{Name: "logo.png"}}},
	}

	external.Fill(local)

	assert.Equal(t, "한빛", external.Company.Name)
	assert.Equal(t, "로컬 설명", external.Company.Description)
	assert.Equal(t, "info@hanbit.co.kr", external.Contact.Email)
	assert.Equal(t, []sitegen.Service{{Title: "컨설팅"}}, external.Services)
	assert.Len(t, external.Images.Logos, 1)
}

func TestContentBundle_AppliedSections(t *testing.T) {
	t.Parallel()

	b := &sitegen.ContentBundle{
		Hero:     sitegen.Hero{Title: "환영합니다"},
		Services: []sitegen.Service{{Title: "A"}},
		Contact:  sitegen.Contact{Phone: "02-123-4567"},
	}

	assert.Equal(t, []string{"hero", "services", "contact"}, b.AppliedSections())
}
