package ternary

// ShareGroup links the view limits of several Axes. The group is owned by
// whatever container lays the axes out; each Axes only borrows it.
//
// When a member's limits change successfully, the new limits are copied to
// every other member, rescaled by the ratio of their ternary sums.
type ShareGroup struct {
	members []*Axes
	syncing bool
}

// NewShareGroup returns an empty group.
func NewShareGroup() *ShareGroup {
	return &ShareGroup{}
}

// Members returns the axes in join order.
func (g *ShareGroup) Members() []*Axes {
	return append([]*Axes(nil), g.members...)
}

func (g *ShareGroup) join(ax *Axes) {
	g.members = append(g.members, ax)
}

// Leave removes ax from the group.
func (g *ShareGroup) Leave(ax *Axes) {
	for i, m := range g.members {
		if m == ax {
			g.members = append(g.members[:i], g.members[i+1:]...)
			ax.group = nil
			return
		}
	}
}

// propagate copies the limits of src to every other member.
func (g *ShareGroup) propagate(src *Axes) {
	if g.syncing {
		return
	}
	g.syncing = true
	defer func() { g.syncing = false }()

	for _, m := range g.members {
		if m == src {
			continue
		}
		lim := src.limits.Scaled(m.sum / src.sum)
		if err := m.applyLimits(lim, true); err != nil {
			Logger().Warn("ternary: shared limits rejected", "err", err)
		}
	}
}
