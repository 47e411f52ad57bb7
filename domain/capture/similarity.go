package capture

import (
	"image"
	"sync"

	"github.com/corona10/goimagehash"
)

// changeTracker remembers the perceptual hash of the previous shot.
type changeTracker struct {
	mu   sync.Mutex
	last *goimagehash.ImageHash
}

// Distance hashes img and returns its Hamming distance to the previous image,
// or -1 when there is no previous hash or hashing fails.
func (t *changeTracker) Distance(img image.Image) int {
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return -1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.last
	t.last = hash
	if prev == nil {
		return -1
	}
	d, err := prev.Distance(hash)
	if err != nil {
		return -1
	}
	return d
}
