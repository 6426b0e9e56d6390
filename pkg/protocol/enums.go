package protocol

import "strconv"

// Frequency is a telemetry push rate in Hz. The robot only accepts the
// listed values; FrequencyOff disables the push entirely.
type Frequency int

const (
	FrequencyOff  Frequency = 0
	Frequency1Hz  Frequency = 1
	Frequency5Hz  Frequency = 5
	Frequency10Hz Frequency = 10
	Frequency20Hz Frequency = 20
	Frequency30Hz Frequency = 30
	Frequency50Hz Frequency = 50
)

// Token implements Arg.
func (f Frequency) Token() string { return strconv.Itoa(int(f)) }

// Mode is the robot's movement coordination mode.
type Mode string

const (
	ModeChassisLead Mode = "chassis_lead"
	ModeGimbalLead  Mode = "gimbal_lead"
	ModeFree        Mode = "free"
)

// Token implements Arg.
func (m Mode) Token() string { return string(m) }

// ParseMode converts a wire token to a Mode.
func ParseMode(tok string) (Mode, error) {
	switch Mode(tok) {
	case ModeChassisLead, ModeGimbalLead, ModeFree:
		return Mode(tok), nil
	}
	return "", &ParseError{Token: tok, Want: "mode"}
}

// GripperStatus reports how far the gripper is open.
type GripperStatus int

const (
	GripperClosed        GripperStatus = 0
	GripperPartiallyOpen GripperStatus = 1
	GripperOpen          GripperStatus = 2
)

// Token implements Arg.
func (g GripperStatus) Token() string { return strconv.Itoa(int(g)) }

// ParseGripperStatus converts a wire token to a GripperStatus.
func ParseGripperStatus(tok string) (GripperStatus, error) {
	switch tok {
	case "0":
		return GripperClosed, nil
	case "1":
		return GripperPartiallyOpen, nil
	case "2":
		return GripperOpen, nil
	}
	return 0, &ParseError{Token: tok, Want: "gripper status"}
}

// LineType classifies what the line-recognition camera is looking at.
type LineType int

const (
	LineNone         LineType = 0
	LineStraight     LineType = 1
	LineFork         LineType = 2
	LineIntersection LineType = 3
)

// Token implements Arg.
func (l LineType) Token() string { return strconv.Itoa(int(l)) }

// ParseLineType converts a wire token to a LineType.
func ParseLineType(tok string) (LineType, error) {
	switch tok {
	case "0":
		return LineNone, nil
	case "1":
		return LineStraight, nil
	case "2":
		return LineFork, nil
	case "3":
		return LineIntersection, nil
	}
	return 0, &ParseError{Token: tok, Want: "line type"}
}

// LineColour selects which colour the line-recognition camera follows.
type LineColour string

const (
	LineColourRed   LineColour = "red"
	LineColourBlue  LineColour = "blue"
	LineColourGreen LineColour = "green"
)

// Token implements Arg.
func (c LineColour) Token() string { return string(c) }

// LEDComp addresses a group of chassis LEDs.
type LEDComp string

const (
	LEDAll         LEDComp = "all"
	LEDTopAll      LEDComp = "top_all"
	LEDBottomAll   LEDComp = "bottom_all"
	LEDBottomFront LEDComp = "bottom_front"
	LEDBottomBack  LEDComp = "bottom_back"
	LEDBottomLeft  LEDComp = "bottom_left"
	LEDBottomRight LEDComp = "bottom_right"
)

// Token implements Arg.
func (c LEDComp) Token() string { return string(c) }

// LEDEffect is a lighting animation for the chassis LEDs.
type LEDEffect string

const (
	LEDEffectSolid     LEDEffect = "solid"
	LEDEffectOff       LEDEffect = "off"
	LEDEffectPulse     LEDEffect = "pulse"
	LEDEffectBlink     LEDEffect = "blink"
	LEDEffectScrolling LEDEffect = "scrolling"
)

// Token implements Arg.
func (e LEDEffect) Token() string { return string(e) }
