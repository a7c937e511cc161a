package editor

import "github.com/portalland/MiamiBeach-LuckPerms/api"

// ViewChecker decides whether an actor may view an entity in the
// editor. The command layer supplies one; the registry's permission
// resolver is the usual implementation.
type ViewChecker interface {
	MayView(actor, permission string, entity api.Entity) bool
}

// Filter keeps only the holders and tracks the actor may view. It runs
// as a single pass after collection, so authorization stays decoupled
// from storage iteration order.
func Filter(
	checker ViewChecker,
	actor, permission string,
	holders []api.Holder,
	tracks []*api.Track,
) ([]api.Holder, []*api.Track) {
	kept := holders[:0:0]
	for _, h := range holders {
		if checker.MayView(actor, permission, h) {
			kept = append(kept, h)
		}
	}

	keptTracks := tracks[:0:0]
	for _, t := range tracks {
		if checker.MayView(actor, permission, t) {
			keptTracks = append(keptTracks, t)
		}
	}

	return kept, keptTracks
}
