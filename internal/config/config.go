package config

const (
	WindowTitle = "Interactive Track Design"

	// Debug turns on debug logging, which traces every design change.
	Debug = false

	// Logical screen; ebiten scales it to the window.
	ScreenWidth  = 660
	ScreenHeight = 1200
	WindowWidth  = 495
	WindowHeight = 900

	// Track count stepper
	MinTrackCount     = 1
	MaxTrackCount     = 10
	TrackCountStep    = 1
	DefaultTrackCount = 1

	// Track length slider
	MinTrackLength     = 100
	MaxTrackLength     = 1000
	DefaultTrackLength = 400
	LengthMajorTick    = 200

	// Lane geometry
	LaneWidth        = 50
	LaneGap          = 10
	ObstacleSize     = 50
	ObstaclesPerLane = 2

	// Lane panel: wide enough for MaxTrackCount lanes in one row and tall
	// enough for a MaxTrackLength lane, gaps included.
	PanelX      = 20
	PanelY      = 20
	PanelWidth  = MaxTrackCount*(LaneWidth+LaneGap) + LaneGap
	PanelHeight = MaxTrackLength + 2*LaneGap
	PanelBorder = 2

	// Control strip below the panel
	ControlsY     = PanelY + PanelHeight + 20
	ControlHeight = 30
	LabelX        = 20

	StepperX     = 130
	StepperWidth = 70
	ArrowWidth   = 20

	ButtonWidth   = 120
	AddButtonX    = 230
	RemoveButtonX = 360

	SliderX      = 130
	SliderY      = ControlsY + 50
	SliderWidth  = 450
	SliderHeight = 24
	KnobWidth    = 12
	TickLength   = 8
)
