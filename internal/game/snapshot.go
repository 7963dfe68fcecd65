package game

// WorldInit is the static world description sent to a presentation client
// once, when it attaches to a session.
type WorldInit struct {
	WorldWidth  float64 `json:"world_width"`
	WorldHeight float64 `json:"world_height"`

	ViewportWidth  float64 `json:"viewport_width"`
	ViewportHeight float64 `json:"viewport_height"`

	Buildings []Building `json:"buildings"`
	Roads     []Rect     `json:"roads"`

	Seed int64 `json:"seed"`
}

// AgentState is the per-tick dynamic state of an on-foot agent.
type AgentState struct {
	ID     string  `json:"id"`
	Pos    Vec2    `json:"pos"`
	Bounds Rect    `json:"bounds"`
	Speed  float64 `json:"speed"`
}

// CarState is the per-tick dynamic state of the vehicle.
type CarState struct {
	ID      string  `json:"id"`
	Pos     Vec2    `json:"pos"`
	Vel     Vec2    `json:"vel"`
	Heading float64 `json:"heading"`
	Bounds  Rect    `json:"bounds"`
	Speed   float64 `json:"speed"`
	Driven  bool    `json:"driven"`
}

// Snapshot is the read-only world state published after every tick.
type Snapshot struct {
	Tick uint64 `json:"tick"`

	Player    AgentState   `json:"player"`
	InVehicle bool         `json:"in_vehicle"`
	Car       CarState     `json:"car"`
	NPCs      []AgentState `json:"npcs"`

	CameraOffset Vec2 `json:"camera_offset"`

	Marker           Vec2    `json:"marker"`
	MarkerReached    bool    `json:"marker_reached"`
	DistanceToMarker float64 `json:"distance_to_marker"`

	BoostActive bool    `json:"boost_active"`
	BoostHue    float64 `json:"boost_hue"`

	FPS float64 `json:"fps"`
}

// InitState builds the static description of this world.
func (w *World) InitState() WorldInit {
	return WorldInit{
		WorldWidth:     w.Cfg.WorldWidth,
		WorldHeight:    w.Cfg.WorldHeight,
		ViewportWidth:  w.Cfg.ViewportWidth,
		ViewportHeight: w.Cfg.ViewportHeight,
		Buildings:      w.Buildings,
		Roads:          w.Roads,
		Seed:           w.Seed,
	}
}

// Snapshot captures the dynamic world state for the current tick.
func (w *World) Snapshot() Snapshot {
	npcs := make([]AgentState, 0, len(w.NPCs))
	for _, n := range w.NPCs {
		npcs = append(npcs, AgentState{
			ID:     n.ID,
			Pos:    n.Pos,
			Bounds: n.Bounds(),
			Speed:  n.Speed,
		})
	}
	return Snapshot{
		Tick: w.Tick,
		Player: AgentState{
			ID:     w.Player.ID,
			Pos:    w.Player.Pos,
			Bounds: w.Player.Bounds(),
			Speed:  w.Player.Speed,
		},
		InVehicle: w.InVehicle(),
		Car: CarState{
			ID:      w.Car.ID,
			Pos:     w.Car.Pos,
			Vel:     w.Car.Vel,
			Heading: w.Car.Heading,
			Bounds:  w.Car.Bounds(),
			Speed:   w.Car.Speed(),
			Driven:  w.Car.Driver != nil,
		},
		NPCs:             npcs,
		CameraOffset:     w.Camera.Offset,
		Marker:           w.Marker,
		MarkerReached:    w.MarkerReached,
		DistanceToMarker: w.DistanceToMarker(),
		BoostActive:      w.Boost.Active,
		BoostHue:         w.Boost.Hue(),
		FPS:              w.FPS,
	}
}
