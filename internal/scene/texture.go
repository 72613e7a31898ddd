package scene

import (
	"errors"
	"fmt"
	"image"
)

// MaxTextures is the texture table capacity. The slot index doubles as the
// GL texture unit, so the cap matches the guaranteed number of units.
const MaxTextures = 16

// SlotNotFound is the sentinel slot published to the shader when a tag has
// no registered texture.
const SlotNotFound = -1

var (
	// ErrTextureTableFull is returned when registering past MaxTextures.
	ErrTextureTableFull = errors.New("texture table full")
	// ErrDuplicateTag is returned when a tag is registered twice. The
	// first registration stays authoritative.
	ErrDuplicateTag = errors.New("texture tag already registered")
)

// Uploader owns the GPU side of texture management.
type Uploader interface {
	Upload(rgba *image.RGBA, opaque bool) (uint32, error)
	Bind(unit int, id uint32)
	Delete(ids []uint32)
}

type textureEntry struct {
	tag string
	id  uint32
}

// TextureTable maps texture tags to GPU texture handles and bind slots.
// Entries are stored in registration order; an entry's index is its slot
// and its texture unit.
type TextureTable struct {
	uploader Uploader
	entries  []textureEntry
	slots    map[string]int
}

// NewTextureTable creates an empty table backed by the given uploader.
func NewTextureTable(uploader Uploader) *TextureTable {
	return &TextureTable{
		uploader: uploader,
		slots:    make(map[string]int),
	}
}

// Register decodes the image at path (flipped vertically, RGB or RGBA
// only), uploads it and appends an entry under tag. Returns an error on
// decode failure, unsupported channel count, duplicate tag or a full table;
// in every failure case the tag stays absent from lookups.
func (t *TextureTable) Register(path, tag string) error {
	if _, exists := t.slots[tag]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
	}
	if len(t.entries) >= MaxTextures {
		return fmt.Errorf("%w: capacity %d", ErrTextureTableFull, MaxTextures)
	}

	rgba, opaque, err := decodeImage(path)
	if err != nil {
		return err
	}

	id, err := t.uploader.Upload(rgba, opaque)
	if err != nil {
		return fmt.Errorf("uploading texture %q: %w", tag, err)
	}

	t.slots[tag] = len(t.entries)
	t.entries = append(t.entries, textureEntry{tag: tag, id: id})
	return nil
}

// BindAll binds every registered texture to the texture unit matching its
// slot. Repeated calls re-issue the same bindings.
func (t *TextureTable) BindAll() {
	for slot, entry := range t.entries {
		t.uploader.Bind(slot, entry.id)
	}
}

// FindSlot returns the bind slot for tag, or SlotNotFound.
func (t *TextureTable) FindSlot(tag string) int {
	if slot, ok := t.slots[tag]; ok {
		return slot
	}
	return SlotNotFound
}

// FindID returns the GPU texture handle for tag. ok is false when the tag
// is absent.
func (t *TextureTable) FindID(tag string) (uint32, bool) {
	slot, ok := t.slots[tag]
	if !ok {
		return 0, false
	}
	return t.entries[slot].id, true
}

// Len returns the number of registered textures.
func (t *TextureTable) Len() int {
	return len(t.entries)
}

// Destroy deletes every registered GPU texture and empties the table.
func (t *TextureTable) Destroy() {
	if len(t.entries) == 0 {
		return
	}
	ids := make([]uint32, len(t.entries))
	for i, e := range t.entries {
		ids[i] = e.id
	}
	t.uploader.Delete(ids)
	t.entries = t.entries[:0]
	t.slots = make(map[string]int)
}
