// internal/match/catalog/catalog.go
package catalog

import "sort"

// Track identifies a curated job-role category.
type Track string

const (
	TrackBackend     Track = "backend"
	TrackFrontend    Track = "frontend"
	TrackFullstack   Track = "fullstack"
	TrackMobile      Track = "mobile"
	TrackDevOps      Track = "devops"
	TrackDataScience Track = "data-science"
	TrackDataEng     Track = "data-engineering"
	TrackML          Track = "machine-learning"
	TrackQA          Track = "qa"
	TrackSecurity    Track = "security"
	TrackDesign      Track = "design"
	TrackProduct     Track = "product"
	TrackMarketing   Track = "marketing"
	TrackSales       Track = "sales"
	TrackHR          Track = "hr"
	TrackFinance     Track = "finance"

	// TrackCustom marks an adaptive profile synthesized for roles that
	// did not match any curated track.
	TrackCustom Track = "custom"
)

// Blueprint holds the skill lists and project ideas for one track.
type Blueprint struct {
	Core     []string
	Adjacent []string
	Critical []string
	Projects []string
}

// Profile binds a track to its classification keywords and blueprint.
type Profile struct {
	Track     Track
	Keywords  []string
	Blueprint Blueprint
}

var (
	trackIndex map[Track]*Profile
	skillIndex map[Track]map[string]struct{}
	allTokens  []string
)

func init() {
	trackIndex = make(map[Track]*Profile, len(Tracks))
	skillIndex = make(map[Track]map[string]struct{}, len(Tracks))
	tokenSet := make(map[string]struct{})

	for i := range Tracks {
		p := &Tracks[i]
		trackIndex[p.Track] = p

		idx := make(map[string]struct{})
		for _, group := range [][]string{p.Blueprint.Core, p.Blueprint.Adjacent, p.Blueprint.Critical, p.Keywords} {
			for _, s := range group {
				idx[s] = struct{}{}
				if len(s) >= 3 {
					tokenSet[s] = struct{}{}
				}
			}
		}
		skillIndex[p.Track] = idx
	}

	allTokens = make([]string, 0, len(tokenSet))
	for s := range tokenSet {
		allTokens = append(allTokens, s)
	}
	sort.Strings(allTokens)
}

// Lookup returns the static profile for a track, if one exists.
func Lookup(t Track) (*Profile, bool) {
	p, ok := trackIndex[t]
	return p, ok
}

// SkillIndex returns the set of every skill token a track owns
// (core + adjacent + critical + classification keywords).
func SkillIndex(t Track) map[string]struct{} {
	return skillIndex[t]
}

// AllSkillTokens returns the accumulated role-skill catalog: every token of
// length >= 3 from every static track, sorted. Used by the free-text scan
// in skill extraction.
func AllSkillTokens() []string {
	return allTokens
}
