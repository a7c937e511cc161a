package editor

import (
	"sort"
	"strings"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
)

// UserSource provides read access to all known users.
type UserSource interface {
	Users() []*api.User
}

// GroupSource provides read access to all known groups.
type GroupSource interface {
	Groups() []*api.Group
}

// TrackSource provides read access to all known tracks.
type TrackSource interface {
	Tracks() []*api.Track
}

// Collect gathers every candidate entity of the kinds selected by the
// scope, in display order: groups first (weight descending, then name),
// then users (display name ascending). Tracks are included only when
// the scope covers groups. No authorization is applied here; filtering
// happens in a separate pass over the full candidate set.
func Collect(scope Scope, groups GroupSource, users UserSource, tracks TrackSource) ([]api.Holder, []*api.Track) {
	var holders []api.Holder
	var trackList []*api.Track

	if scope.IncludesGroups() {
		for _, g := range SortGroups(groups.Groups()) {
			holders = append(holders, g)
		}
		trackList = SortTracks(tracks.Tracks())
	}
	if scope.IncludesUsers() {
		for _, u := range SortUsers(users.Users()) {
			holders = append(holders, u)
		}
	}

	return holders, trackList
}

// SortGroups returns the groups ordered by descending weight, breaking
// ties by ascending case-insensitive name. The input is not modified.
func SortGroups(groups []*api.Group) []*api.Group {
	sorted := make([]*api.Group, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		wi, wj := sorted[i].WeightOrZero(), sorted[j].WeightOrZero()
		if wi != wj {
			return wi > wj
		}
		return caseless(sorted[i].Name) < caseless(sorted[j].Name)
	})
	return sorted
}

// SortUsers returns the users ordered by ascending case-insensitive
// display name. The input is not modified.
func SortUsers(users []*api.User) []*api.User {
	sorted := make([]*api.User, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool {
		return caseless(sorted[i].Display()) < caseless(sorted[j].Display())
	})
	return sorted
}

// SortTracks returns the tracks ordered by ascending case-insensitive
// name. The input is not modified.
func SortTracks(tracks []*api.Track) []*api.Track {
	sorted := make([]*api.Track, len(tracks))
	copy(sorted, tracks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return caseless(sorted[i].Name) < caseless(sorted[j].Name)
	})
	return sorted
}

func caseless(s string) string { return strings.ToLower(s) }
