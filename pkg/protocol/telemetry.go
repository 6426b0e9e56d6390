package protocol

// WheelSpeed holds the four mecanum wheel speeds in rpm.
type WheelSpeed struct {
	FrontRight float64 `json:"front_right"`
	FrontLeft  float64 `json:"front_left"`
	BackRight  float64 `json:"back_right"`
	BackLeft   float64 `json:"back_left"`
}

// ChassisSpeed is the chassis velocity: translation in m/s, rotation in
// degrees/s clockwise, plus the individual wheel speeds.
type ChassisSpeed struct {
	Forwards  float64    `json:"forwards"`
	Right     float64    `json:"right"`
	Clockwise float64    `json:"clockwise"`
	Wheels    WheelSpeed `json:"wheels"`
}

// ParseChassisSpeed parses the 7 tokens of a "chassis speed" reply.
func ParseChassisSpeed(r Response) (ChassisSpeed, error) {
	fields := make([]float64, 7)
	for i := range fields {
		v, err := r.Float(i)
		if err != nil {
			return ChassisSpeed{}, err
		}
		fields[i] = v
	}
	return ChassisSpeed{
		Forwards:  fields[0],
		Right:     fields[1],
		Clockwise: fields[2],
		Wheels: WheelSpeed{
			FrontRight: fields[3],
			FrontLeft:  fields[4],
			BackRight:  fields[5],
			BackLeft:   fields[6],
		},
	}, nil
}

// ChassisPosition is the chassis position in metres relative to power-on.
// Clockwise (degrees) is only present on query replies, not on pushes.
type ChassisPosition struct {
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Clockwise *float64 `json:"clockwise,omitempty"`
}

// ParseChassisPosition parses a "chassis position" reply or push payload.
func ParseChassisPosition(r Response) (ChassisPosition, error) {
	x, err := r.Float(0)
	if err != nil {
		return ChassisPosition{}, err
	}
	y, err := r.Float(1)
	if err != nil {
		return ChassisPosition{}, err
	}
	pos := ChassisPosition{X: x, Y: y}
	if r.Len() >= 3 {
		cw, err := r.Float(2)
		if err != nil {
			return ChassisPosition{}, err
		}
		pos.Clockwise = &cw
	}
	return pos, nil
}

// ChassisAttitude is the chassis orientation in degrees.
type ChassisAttitude struct {
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
	Yaw   float64 `json:"yaw"`
}

// ParseChassisAttitude parses a "chassis attitude" reply or push payload.
func ParseChassisAttitude(r Response) (ChassisAttitude, error) {
	pitch, err := r.Float(0)
	if err != nil {
		return ChassisAttitude{}, err
	}
	roll, err := r.Float(1)
	if err != nil {
		return ChassisAttitude{}, err
	}
	yaw, err := r.Float(2)
	if err != nil {
		return ChassisAttitude{}, err
	}
	return ChassisAttitude{Pitch: pitch, Roll: roll, Yaw: yaw}, nil
}

// ChassisStatus is the set of chassis state flags. The wire order of the
// eleven flags is fixed and matches the field order below.
type ChassisStatus struct {
	Static     bool `json:"static"`
	UpHill     bool `json:"up_hill"`
	DownHill   bool `json:"down_hill"`
	OnSlope    bool `json:"on_slope"`
	PickUp     bool `json:"pick_up"`
	Slip       bool `json:"slip"`
	ImpactX    bool `json:"impact_x"`
	ImpactY    bool `json:"impact_y"`
	ImpactZ    bool `json:"impact_z"`
	RollOver   bool `json:"roll_over"`
	HillStatic bool `json:"hill_static"`
}

// ParseChassisStatus parses the 11 tokens of a "chassis status" reply or
// push payload.
func ParseChassisStatus(r Response) (ChassisStatus, error) {
	flags := make([]bool, 11)
	for i := range flags {
		v, err := r.Bool(i)
		if err != nil {
			return ChassisStatus{}, err
		}
		flags[i] = v
	}
	return ChassisStatus{
		Static:     flags[0],
		UpHill:     flags[1],
		DownHill:   flags[2],
		OnSlope:    flags[3],
		PickUp:     flags[4],
		Slip:       flags[5],
		ImpactX:    flags[6],
		ImpactY:    flags[7],
		ImpactZ:    flags[8],
		RollOver:   flags[9],
		HillStatic: flags[10],
	}, nil
}

// Point is one waypoint on a recognized line. X and Y are normalized image
// coordinates; Tangent is the line angle and Curvature its curvature at
// that point.
type Point struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Tangent   float64 `json:"tangent"`
	Curvature float64 `json:"curvature"`
}

// Line is one line-recognition result: the line classification plus the
// ordered waypoints the camera detected.
type Line struct {
	Type   LineType `json:"type"`
	Points []Point  `json:"points"`
}

// ParseLine parses an "AI line" push payload: a leading line-type token
// followed by groups of 4 floats, one group per waypoint.
func ParseLine(r Response) (Line, error) {
	typeTok, err := r.Str(0)
	if err != nil {
		return Line{}, err
	}
	lineType, err := ParseLineType(typeTok)
	if err != nil {
		return Line{}, err
	}

	count := (r.Len() - 1) / 4
	points := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		var fields [4]float64
		for j := range fields {
			v, err := r.Float(i*4 + j + 1)
			if err != nil {
				return Line{}, err
			}
			fields[j] = v
		}
		points = append(points, Point{
			X:         fields[0],
			Y:         fields[1],
			Tangent:   fields[2],
			Curvature: fields[3],
		})
	}
	return Line{Type: lineType, Points: points}, nil
}
