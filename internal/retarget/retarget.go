package retarget

import (
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/logger"
	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/scene"
)

// Retargeter merges animations onto skinned avatars.
type Retargeter struct {
	normalizer domain.JointNameNormalizer
}

// New creates a Retargeter that compares joints with normalizer.
func New(normalizer domain.JointNameNormalizer) *Retargeter {
	return &Retargeter{normalizer: normalizer}
}

// Retarget appends every animation of source to target, bound to target's
// first skin. target is only modified when Retarget succeeds.
func (r *Retargeter) Retarget(source, target *scene.Document) (*domain.MergeReport, error) {
	if source == nil || source.Document == nil || target == nil || target.Document == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}
	skin, ok := target.FirstSkin()
	if !ok {
		return nil, domain.ErrNoSkin
	}

	joints := r.jointIndex(target, skin)
	base := offsetsOf(target)

	accessors, err := rebaseAccessors(source, base)
	if err != nil {
		return nil, err
	}
	views, err := rebaseBufferViews(source, base)
	if err != nil {
		return nil, err
	}
	buffers := copyBuffers(source)

	report := &domain.MergeReport{}
	animations := make([]*gltf.Animation, 0, len(source.Animations))
	for i, anim := range source.Animations {
		if anim == nil {
			continue
		}
		bound, err := r.bind(source, anim, joints, base, report)
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}
		animations = append(animations, bound)
	}

	target.Accessors = append(target.Accessors, accessors...)
	target.BufferViews = append(target.BufferViews, views...)
	target.Buffers = append(target.Buffers, buffers...)
	target.Animations = append(target.Animations, animations...)

	report.AnimationsAdded = len(animations)
	report.AccessorsAppended = len(accessors)
	report.BufferViewsAppended = len(views)
	report.BuffersAppended = len(buffers)

	logger.Debug("retarget: %d animations, %d channels bound, %d skipped",
		report.AnimationsAdded, report.ChannelsMatched, report.ChannelsSkipped)
	return report, nil
}

// jointIndex maps normalised joint names to node indices.
// When two joints normalise to the same name the first one wins.
func (r *Retargeter) jointIndex(doc *scene.Document, skin *gltf.Skin) map[string]uint32 {
	index := make(map[string]uint32, len(skin.Joints))
	for _, node := range skin.Joints {
		name, ok := doc.NodeName(node)
		if !ok || name == "" {
			continue
		}
		key := r.normalizer.Normalize(name)
		if _, dup := index[key]; dup {
			logger.Debug("retarget: joint %q shadowed by an earlier joint", name)
			continue
		}
		index[key] = node
	}
	return index
}

// bind builds the retargeted copy of anim. Samplers are copied only when
// a bound channel uses them, once per source sampler.
func (r *Retargeter) bind(source *scene.Document, anim *gltf.Animation, joints map[string]uint32,
	base offsets, report *domain.MergeReport) (*gltf.Animation, error) {
	out := &gltf.Animation{
		Name:     anim.Name,
		Channels: []*gltf.Channel{},
		Samplers: []*gltf.AnimationSampler{},
	}
	samplers := make(map[uint32]uint32)

	for ci, ch := range anim.Channels {
		if ch == nil {
			continue
		}
		if ch.Sampler == nil || int(*ch.Sampler) >= len(anim.Samplers) || anim.Samplers[*ch.Sampler] == nil {
			return nil, fmt.Errorf("%w: channel %d has no sampler", domain.ErrIntegrity, ci)
		}

		var joint string
		if ch.Target.Node != nil {
			joint, _ = source.NodeName(*ch.Target.Node)
		}
		node, ok := joints[r.normalizer.Normalize(joint)]
		if !ok || ch.Target.Node == nil {
			report.ChannelsSkipped++
			report.Unmatched = append(report.Unmatched, domain.UnmatchedJoint{Animation: anim.Name, Joint: joint})
			logger.Warn("animation %q: no avatar joint for %q, channel dropped", anim.Name, joint)
			continue
		}

		idx, seen := samplers[*ch.Sampler]
		if !seen {
			s, err := rebaseSampler(anim.Samplers[*ch.Sampler], len(source.Accessors), base)
			if err != nil {
				return nil, fmt.Errorf("sampler %d: %w", *ch.Sampler, err)
			}
			idx = uint32(len(out.Samplers))
			samplers[*ch.Sampler] = idx
			out.Samplers = append(out.Samplers, s)
		}

		out.Channels = append(out.Channels, &gltf.Channel{
			Sampler: gltf.Index(idx),
			Target:  gltf.ChannelTarget{Node: gltf.Index(node), Path: ch.Target.Path},
		})
		report.ChannelsMatched++
	}
	return out, nil
}
