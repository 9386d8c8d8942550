package tiles

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/paulmach/orb/maptile"

	"tilesynth/internal/config"
	"tilesynth/internal/model"
	redis_client "tilesynth/internal/redis"
	"tilesynth/internal/service/storage"
	"tilesynth/internal/service/synth"
)

const (
	// TileRedisPrefix namespaces cached tile payloads in Redis.
	TileRedisPrefix = "tile:"

	// polygonVertexCount is the fixed ring size for generated polygons.
	polygonVertexCount = 5
)

// TileService orchestrates one synthesis + decode per tile request and
// owns the two cache levels in front of the generator: the Redis tile
// source cache and the generation-keyed renderer cache.
type TileService struct {
	resolver *Resolver
	decoder  Decoder

	mutex          sync.RWMutex
	totalCount     int
	configured     bool
	generation     string
	generationNano int64

	rendererCache storage.Storage[string, []byte]
	seed          func() int64
}

var (
	tileServiceInstance *TileService
	tileServiceOnce     sync.Once
)

// GetTileService returns the singleton instance of TileService.
func GetTileService() *TileService {
	tileServiceOnce.Do(func() {
		tileServiceInstance = NewTileService(MercatorGrid{}, GeoJSONDecoder{})
	})
	return tileServiceInstance
}

// NewTileService builds a service around the given grid and decoder.
// A nil grid degrades every tile to the zero extent.
func NewTileService(grid TileGrid, decoder Decoder) *TileService {
	s := &TileService{
		resolver:      NewResolver(grid),
		decoder:       decoder,
		totalCount:    config.FeatureCountDefault,
		rendererCache: storage.NewMemoryStorage[string, []byte](),
		seed:          func() int64 { return time.Now().UnixNano() },
	}
	s.generation = s.nextGenerationLocked()
	return s
}

// SplitCounts divides the total feature budget into point, polygon and
// line counts. The line count absorbs the rounding remainder, so the
// three always sum exactly to total.
func SplitCounts(total int) (points, polygons, lines int) {
	points = total / 3
	polygons = total / 3
	lines = total - points - polygons
	return
}

// TotalFeatureCount returns the live feature budget.
func (s *TileService) TotalFeatureCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.totalCount
}

// Generation returns the current cache-busting generation key.
func (s *TileService) Generation() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.generation
}

// SetTotalFeatureCount installs a new live feature budget. The first
// call only configures; a later call that actually changes the value
// drops the Redis tile cache and advances the cache generation.
func (s *TileService) SetTotalFeatureCount(ctx context.Context, total int) error {
	if err := config.ValidateFeatureCount(total); err != nil {
		return err
	}

	s.mutex.Lock()
	initial := !s.configured
	changed := s.totalCount != total
	s.totalCount = total
	s.configured = true
	var generation string
	if !initial && changed {
		generation = s.nextGenerationLocked()
	}
	s.mutex.Unlock()

	if initial || !changed {
		return nil
	}

	// Tile source discard: cached payloads go away so the next display
	// of each tile re-issues a load.
	if err := redis_client.DeleteByPrefix(ctx, TileRedisPrefix); err != nil {
		log.Printf("Failed to drop cached tiles: %v", err)
	}
	log.Printf("Feature count changed to %d, cache generation now %s", total, generation)
	return nil
}

// nextGenerationLocked advances the cache-busting key. The wall clock
// is bumped by one when it has not advanced, keeping keys strictly
// increasing on coarse clocks. Caller must hold the mutex.
func (s *TileService) nextGenerationLocked() string {
	nano := time.Now().UnixNano()
	if nano <= s.generationNano {
		nano = s.generationNano + 1
	}
	s.generationNano = nano
	s.generation = strconv.FormatInt(nano, 10)
	return s.generation
}

// LoadTile produces the decoded payload for one tile request. Exactly
// one synthesis + decode happens per cache miss, and the payload is
// attached whole or not at all.
func (s *TileService) LoadTile(ctx context.Context, z, x, y uint32) (*model.Tile, error) {
	s.mutex.RLock()
	total := s.totalCount
	generation := s.generation
	s.mutex.RUnlock()

	tile := &model.Tile{Coord: maptile.New(x, y, maptile.Zoom(z))}

	cacheKey := fmt.Sprintf("%s/%d/%d/%d", generation, z, x, y)
	if payload, ok := s.rendererCache.Get(cacheKey); ok {
		tile.Features = payload
		return tile, nil
	}

	redisKey := fmt.Sprintf("%s%d/%d/%d", TileRedisPrefix, z, x, y)
	if payload, err := redis_client.GetBytes(ctx, redisKey); err == nil {
		s.rendererCache.Set(cacheKey, payload)
		tile.Features = payload
		return tile, nil
	}

	points, polygons, lines := SplitCounts(total)
	params := model.GenerationParams{
		PointCount:   points,
		PolygonCount: polygons,
		LineCount:    lines,
		VertexCount:  polygonVertexCount,
		Bound:        s.resolver.Resolve(z, x, y),
	}

	// Each call owns its random source, so parallel tile loads never
	// share mutable PRNG state.
	rng := rand.New(rand.NewSource(s.seed()))
	fc, err := synth.Generate(params, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tile %d/%d/%d: %w", z, x, y, err)
	}

	payload, err := s.decoder.Decode(fc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tile %d/%d/%d: %w", z, x, y, err)
	}

	tile.Features = payload
	s.rendererCache.Set(cacheKey, payload)
	if err := redis_client.Set(ctx, redisKey, payload, config.TileCacheTTL); err != nil {
		log.Printf("Failed to cache tile %s: %v", redisKey, err)
	}
	return tile, nil
}

// PruneStaleCache drops renderer-cache entries left behind by
// superseded cache generations and returns how many were removed.
func (s *TileService) PruneStaleCache() int {
	prefix := s.Generation() + "/"
	return s.rendererCache.DeleteFunc(func(key string) bool {
		return !strings.HasPrefix(key, prefix)
	})
}
