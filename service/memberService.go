package service

import (
	"github.com/hbollon/go-edlib"
	"github.com/joeyave/airia-site/entity"
	"github.com/joeyave/airia-site/helpers"
	"golang.org/x/exp/slices"
)

type MemberService struct{}

func NewMemberService() *MemberService {
	return &MemberService{}
}

func (s *MemberService) FindOneByID(members []*entity.Member, ID string) (*entity.Member, error) {
	i := slices.IndexFunc(members, func(m *entity.Member) bool { return m.ID == ID })
	if i < 0 {
		return nil, ErrNotFound
	}
	return members[i], nil
}

// SuggestID returns the known id closest to a mistyped one, or "" when none is
// similar enough.
func SuggestID(ID string, knownIDs []string) string {
	if ID == "" || len(knownIDs) == 0 {
		return ""
	}
	suggestion, err := edlib.FuzzySearchThreshold(ID, knownIDs, helpers.SuggestionMinSimilarity, edlib.Levenshtein)
	if err != nil {
		return ""
	}
	return suggestion
}
