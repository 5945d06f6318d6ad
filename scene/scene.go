// Package scene provides the collection that owns attached geometries and
// drives their commit cycle. After a successful commit the scene and its
// geometries are read-only and safe for concurrent queries.
package scene

import (
	"fmt"

	"github.com/BigBearFalmouth/embree/geometry"
	"github.com/BigBearFalmouth/embree/log"
	"github.com/BigBearFalmouth/embree/types"
)

// A collection of geometries sharing one commit cycle.
type Scene struct {
	logger     log.Logger
	geometries []geometry.Geometry
	committed  bool
}

// Create an empty scene.
func New() *Scene {
	return &Scene{
		logger: log.New("scene"),
	}
}

// Attach a geometry to the scene and return its id.
func (s *Scene) Attach(geom geometry.Geometry) int {
	s.geometries = append(s.geometries, geom)
	s.committed = false
	return len(s.geometries) - 1
}

// Get an attached geometry by id.
func (s *Scene) Geometry(id int) geometry.Geometry {
	return s.geometries[id]
}

// Get the number of attached geometries.
func (s *Scene) NumGeometries() int {
	return len(s.geometries)
}

// Return true if the scene has been committed since the last attach.
func (s *Scene) Committed() bool {
	return s.committed
}

// Commit every attached geometry. A failed geometry commit aborts the
// scene commit and leaves the scene uncommitted.
func (s *Scene) Commit() error {
	for id, geom := range s.geometries {
		if err := geom.Commit(); err != nil {
			return fmt.Errorf("scene: commit geometry %d: %s", id, err)
		}
	}
	s.committed = true
	s.logger.Debugf("committed %d geometries", len(s.geometries))
	return nil
}

// Calc the union of the static build bounds of every valid primitive of
// every boundable geometry. Invalid primitives are skipped, not fatal.
func (s *Scene) Bounds() types.Box {
	bbox := types.EmptyBox()
	skipped := 0
	for _, geom := range s.geometries {
		boundable, ok := geom.(geometry.Boundable)
		if !ok {
			continue
		}
		for i := 0; i < geom.NumPrimitives(); i++ {
			if primBounds, ok := boundable.BuildBounds(i); ok {
				bbox = bbox.Union(primBounds)
			} else {
				skipped++
			}
		}
	}
	if skipped > 0 {
		s.logger.Warningf("skipped %d invalid primitives while computing scene bounds", skipped)
	}
	return bbox
}

// Calc a box pair bounding the motion of every primitive of every
// motion-boundable geometry across the time range. Invalid primitives are
// skipped, not fatal.
func (s *Scene) MotionBounds(timeRange types.Range) types.LBBox {
	lbbox := types.LBBox{Bounds0: types.EmptyBox(), Bounds1: types.EmptyBox()}
	skipped := 0
	for _, geom := range s.geometries {
		boundable, ok := geom.(geometry.MotionBoundable)
		if !ok {
			continue
		}
		for i := 0; i < geom.NumPrimitives(); i++ {
			if primBounds, ok := boundable.LinearBoundsValid(i, timeRange); ok {
				lbbox.Bounds0 = lbbox.Bounds0.Union(primBounds.Bounds0)
				lbbox.Bounds1 = lbbox.Bounds1.Union(primBounds.Bounds1)
			} else {
				skipped++
			}
		}
	}
	if skipped > 0 {
		s.logger.Warningf("skipped %d invalid primitives while computing scene motion bounds", skipped)
	}
	return lbbox
}
