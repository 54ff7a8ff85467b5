package window

import (
	"sort"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/focus"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/geometry"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// SortPaintOrder orders records bottom first: always-on-top windows above
// the rest, then by z-index.
func SortPaintOrder(list []types.WindowRecord) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].AlwaysOnTop != list[j].AlwaysOnTop {
			return !list[i].AlwaysOnTop
		}
		return list[i].ZIndex < list[j].ZIndex
	})
}

// View projects a record for the shell, resolving its frame for vp
func View(rec types.WindowRecord, vp types.Viewport, activeID string) types.WindowView {
	frame := geometry.Frame(rec.Bounds, vp)
	return types.WindowView{
		ID:           rec.ID,
		AppID:        rec.AppID,
		Title:        rec.Title,
		Icon:         rec.Icon,
		Position:     frame.Position(),
		Size:         frame.Size(),
		Restore:      rec.Bounds.RestoreRect(),
		ZIndex:       rec.ZIndex,
		IsActive:     rec.ID == activeID,
		IsMinimized:  rec.Minimized,
		IsMaximized:  rec.IsMaximized(),
		IsSnapped:    rec.IsSnapped(),
		SnapLayout:   rec.SnapLayout(),
		AlwaysOnTop:  rec.AlwaysOnTop,
		Transparency: rec.Transparency,
		Animation:    rec.Animation,
		CreatedAt:    rec.CreatedAt,
	}
}

// Candidates reduces records to what focus decisions need
func Candidates(list []types.WindowRecord) []focus.Candidate {
	out := make([]focus.Candidate, len(list))
	for i, rec := range list {
		out[i] = focus.Candidate{ID: rec.ID, ZIndex: rec.ZIndex, Minimized: rec.Minimized}
	}
	return out
}
