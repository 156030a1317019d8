package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	keyVideos            = "videos"
	keyID                = "id"
	keyModels            = "models"
	keyTags              = "tags"
	keyHostAgrees        = "host_agrees"
	keyDurationSeconds   = "duration_seconds"
	keyDurationFormatted = "duration_formatted"
)

// ErrMissingVideos is returned when the primary file has no "videos" member.
var ErrMissingVideos = errors.New(`dataset: missing "videos" array`)

// Dataset is the primary annotation collection. Members the package does not
// interpret are carried through Save unchanged.
type Dataset struct {
	root   *Object
	Videos []*Video
}

// Video is one record of the collection. Only "id" is decoded up front; the
// per-source annotations are decoded by ParseModels.
type Video struct {
	obj    *Object
	id     string
	models map[string]Annotation
	parsed bool
}

// Annotation is what one source reported for one video.
type Annotation struct {
	// Tags is nil when the source carries no "tags" member.
	Tags    []string
	HasTags bool
	// HasHostAgrees reports a "host_agrees" member. HostAgrees is nil when the
	// member is absent or null.
	HasHostAgrees bool
	HostAgrees    *bool
}

// HostAgreed reports whether the source recorded a true host response. A null
// response counts as false.
func (a Annotation) HostAgreed() bool {
	return a.HostAgrees != nil && *a.HostAgrees
}

// Load reads and decodes the primary dataset file at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes a primary dataset document.
func Parse(data []byte) (*Dataset, error) {
	root := NewObject()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, err
	}
	var rawVideos []json.RawMessage
	found, err := root.Decode(keyVideos, &rawVideos)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrMissingVideos
	}

	ds := &Dataset{root: root, Videos: make([]*Video, 0, len(rawVideos))}
	for i, raw := range rawVideos {
		video, err := parseVideo(raw)
		if err != nil {
			return nil, fmt.Errorf("videos[%d]: %w", i, err)
		}
		ds.Videos = append(ds.Videos, video)
	}
	return ds, nil
}

func parseVideo(raw json.RawMessage) (*Video, error) {
	obj := NewObject()
	if err := json.Unmarshal(raw, obj); err != nil {
		return nil, err
	}
	video := &Video{obj: obj}
	found, err := obj.Decode(keyID, &video.id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New(`missing "id"`)
	}
	return video, nil
}

// ParseModels decodes the "models" member. It is safe to call repeatedly;
// only the first call decodes.
func (v *Video) ParseModels() error {
	if v.parsed {
		return nil
	}
	if !v.HasModels() {
		v.parsed = true
		return nil
	}
	models := NewObject()
	if _, err := v.obj.Decode(keyModels, models); err != nil {
		return fmt.Errorf("video %s: %w", v.id, err)
	}
	parsed := make(map[string]Annotation, models.Len())
	for _, label := range models.Keys() {
		ann, err := parseAnnotation(models, label)
		if err != nil {
			return fmt.Errorf("video %s: models[%q]: %w", v.id, label, err)
		}
		parsed[label] = ann
	}
	v.models = parsed
	v.parsed = true
	return nil
}

func parseAnnotation(models *Object, label string) (Annotation, error) {
	src := NewObject()
	if _, err := models.Decode(label, src); err != nil {
		return Annotation{}, err
	}
	var ann Annotation
	found, err := src.Decode(keyTags, &ann.Tags)
	if err != nil {
		return Annotation{}, err
	}
	ann.HasTags = found
	found, err = src.Decode(keyHostAgrees, &ann.HostAgrees)
	if err != nil {
		return Annotation{}, err
	}
	ann.HasHostAgrees = found
	return ann, nil
}

// ID returns the video identifier.
func (v *Video) ID() string { return v.id }

// HasModels reports whether the record carries a "models" member.
func (v *Video) HasModels() bool { return v.obj.Has(keyModels) }

// Source returns the annotation reported by the named source. It reports
// false when the source is absent or the models fail to decode; call
// ParseModels first to see the error.
func (v *Video) Source(label string) (Annotation, bool) {
	if err := v.ParseModels(); err != nil {
		return Annotation{}, false
	}
	ann, ok := v.models[label]
	return ann, ok
}

// Duration returns the raw duration value when the record has been enriched.
func (v *Video) Duration() (json.Number, string, bool) {
	var seconds json.Number
	found, err := v.obj.Decode(keyDurationSeconds, &seconds)
	if err != nil || !found {
		return "", "", false
	}
	var formatted string
	_, _ = v.obj.Decode(keyDurationFormatted, &formatted)
	return seconds, formatted, true
}

// SetDuration records the duration in seconds, copied verbatim, and its
// formatted form.
func (v *Video) SetDuration(seconds json.Number, formatted string) error {
	v.obj.SetRaw(keyDurationSeconds, json.RawMessage(seconds.String()))
	return v.obj.Set(keyDurationFormatted, formatted)
}

// Marshal encodes the dataset as two-space indented JSON without a trailing
// newline.
func (d *Dataset) Marshal() ([]byte, error) {
	videos := make([]*Object, 0, len(d.Videos))
	for _, video := range d.Videos {
		videos = append(videos, video.obj)
	}
	if err := d.root.Set(keyVideos, videos); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Save overwrites path with the encoded dataset.
func (d *Dataset) Save(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}
