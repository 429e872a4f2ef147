package domain

import "time"

// MergeRequest asks for an animation to be retargeted onto an avatar.
type MergeRequest struct {
	// Avatar is the skinned model receiving the animation. Required.
	Avatar AssetRef

	// Animation is the clip to retarget. The zero value selects one from the catalog.
	Animation AssetRef
}

// MergeResult is the outcome of a successful merge.
type MergeResult struct {
	// Data is the merged GLB.
	Data []byte

	// Path is where Data was persisted. Empty when the merge was not saved.
	Path string

	// Animation is the animation ref that was actually used.
	Animation AssetRef

	// Report describes what the retarget did.
	Report MergeReport
}

// UnmatchedJoint is a source channel whose joint has no counterpart in the avatar skin.
type UnmatchedJoint struct {
	// Animation is the source animation name.
	Animation string `json:"animation"`

	// Joint is the source node name, as authored.
	Joint string `json:"joint"`
}

// MergeReport summarises a retarget-and-merge.
// Unmatched joints are diagnostics, not failures.
type MergeReport struct {
	AnimationsAdded     int              `json:"animations_added"`
	ChannelsMatched     int              `json:"channels_matched"`
	ChannelsSkipped     int              `json:"channels_skipped"`
	AccessorsAppended   int              `json:"accessors_appended"`
	BufferViewsAppended int              `json:"buffer_views_appended"`
	BuffersAppended     int              `json:"buffers_appended"`
	Unmatched           []UnmatchedJoint `json:"unmatched,omitempty"`
}

// UnmatchedNames returns the distinct unmatched joint names in first-seen order.
func (r *MergeReport) UnmatchedNames() []string {
	seen := make(map[string]bool, len(r.Unmatched))
	names := make([]string, 0, len(r.Unmatched))
	for _, u := range r.Unmatched {
		if seen[u.Joint] {
			continue
		}
		seen[u.Joint] = true
		names = append(names, u.Joint)
	}
	return names
}

// MergeRecord is a persisted history entry for one completed merge.
type MergeRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// Avatar describes the avatar ref.
	Avatar string

	// Animation describes the animation ref.
	Animation string

	// OutputPath is where the merged asset was saved, if it was.
	OutputPath string

	// ByteLength is the size of the merged GLB.
	ByteLength int

	// ChannelsMatched is the number of channels bound to avatar joints.
	ChannelsMatched int

	// ChannelsSkipped is the number of channels dropped for lack of a joint.
	ChannelsSkipped int

	// CreatedAt is when the merge completed.
	CreatedAt time.Time
}
