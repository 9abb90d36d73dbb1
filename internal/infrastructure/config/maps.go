package config

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"

	"github.com/younwookim/nanoplatformer/internal/domain/entity"
)

var roomImagePattern = regexp.MustCompile(`^(bg|obj)[0-9]+\.png$`)

// RoomImages is the decoded image pair of one room.
type RoomImages struct {
	Background image.Image
	Objects    image.Image
}

// MapSource reads maps laid out as <name>/bg{i}.png and <name>/obj{i}.png.
type MapSource struct {
	fsys fs.FS
}

// NewMapSource creates a map source rooted at a directory
func NewMapSource(dir string) *MapSource {
	return &MapSource{fsys: os.DirFS(dir)}
}

// NewFSMapSource creates a map source from fs.FS
func NewFSMapSource(fsys fs.FS) *MapSource {
	return &MapSource{fsys: fsys}
}

// ListMaps returns the sorted names of every map directory.
func (s *MapSource) ListMaps() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// RoomCount returns half the number of room images in a map directory.
// Other files (a cover image, notes) are not counted.
func (s *MapSource) RoomCount(name string) (int, error) {
	entries, err := fs.ReadDir(s.fsys, name)
	if err != nil {
		return 0, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	files := 0
	for _, e := range entries {
		if !e.IsDir() && roomImagePattern.MatchString(e.Name()) {
			files++
		}
	}
	return files / 2, nil
}

// LoadRoomImages decodes every room image pair of a map in room order.
func (s *MapSource) LoadRoomImages(name string) ([]RoomImages, error) {
	count, err := s.RoomCount(name)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, &entity.MapIntegrityError{Map: name, Room: -1, Err: entity.ErrNoRooms}
	}

	rooms := make([]RoomImages, 0, count)
	for i := 1; i <= count; i++ {
		bg, err := s.decode(name, i-1, fmt.Sprintf("bg%d.png", i))
		if err != nil {
			return nil, err
		}
		obj, err := s.decode(name, i-1, fmt.Sprintf("obj%d.png", i))
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, RoomImages{Background: bg, Objects: obj})
	}
	return rooms, nil
}

func (s *MapSource) decode(name string, room int, file string) (image.Image, error) {
	f, err := s.fsys.Open(path.Join(name, file))
	if err != nil {
		return nil, &entity.MapIntegrityError{
			Map:  name,
			Room: room,
			Err:  fmt.Errorf("%w: %s: %v", entity.ErrMissingRoomPair, file, err),
		}
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &entity.DecodeError{Room: room, Err: fmt.Errorf("failed to decode %s: %w", file, err)}
	}
	return img, nil
}
