package collector

// groupState is the state of the group builder.
type groupState int

const (
	// awaitingNewGroup: the next added tag opens a new group.
	awaitingNewGroup groupState = iota
	// accumulatingGroup: added tags join the last group.
	accumulatingGroup
)

// groupBuilder partitions eligible tags into contiguous groups.
//
// Transitions:
//
//	awaitingNewGroup  --add-->       accumulatingGroup (opens a group)
//	accumulatingGroup --add-->       accumulatingGroup
//	any               --interrupt--> awaitingNewGroup
//
// interrupt is triggered by a skip-listed link and by a non-empty style tag
// that is not collected. Unrelated markup between tags never splits a group.
type groupBuilder struct {
	state  groupState
	groups []Group
}

func newGroupBuilder() *groupBuilder {
	return &groupBuilder{state: awaitingNewGroup}
}

func (b *groupBuilder) add(c *Candidate) {
	if b.state == awaitingNewGroup {
		b.groups = append(b.groups, Group{})
		b.state = accumulatingGroup
	}
	last := &b.groups[len(b.groups)-1]
	last.Tags = append(last.Tags, c)
}

func (b *groupBuilder) interrupt() {
	b.state = awaitingNewGroup
}

func (b *groupBuilder) result() []Group {
	return b.groups
}
