package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidIndex    map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidIndex:    make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidIndex[g.UID] = g
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.uidIndex, g.UID)
			g.Scene = nil
			return
		}
	}
}

// FindByUID is an O(1) lookup by unique id.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidIndex[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

// LateUpdate runs the pre-render pass over every component that wants one.
// Must be called after Update and before drawing; components that position
// objects relative to the camera depend on this ordering.
func (s *Scene) LateUpdate() {
	for _, g := range s.GameObjects {
		if !g.Active {
			continue
		}
		for _, c := range g.Components() {
			if lu, ok := c.(LateUpdater); ok {
				lu.LateUpdate()
			}
		}
	}
}
