package deck

import (
	"math/rand"
	"sync"
	"time"
)

// Shuffler is a random source able to permute n elements. *rand.Rand from
// math/rand and math/rand/v2 both satisfy it with a Fisher-Yates shuffle.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// lockedSource lets the process-wide source be shared between goroutines
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Shuffle(n, swap)
}

var defaultSource Shuffler = &lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}

// NewSeededSource returns a deterministic source for reproducible shuffles
func NewSeededSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes the deck in place. A nil source uses a process-wide
// time-seeded one.
func (d *Deck) Shuffle(rng Shuffler) {
	if len(d.cards) < 2 {
		return
	}
	if rng == nil {
		rng = defaultSource
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
