package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

var globalInputProcessor *Processor
var gameControllers []*sdl.GameController
var rawJoysticks []*sdl.Joystick

func InitInputProcessor() {
	globalInputProcessor = NewInputProcessor(GetInputMapping())

	numJoysticks := sdl.NumJoysticks()
	GetInternalLogger().Debug("Detecting controllers", "joystick_count", numJoysticks)

	for i := 0; i < numJoysticks; i++ {
		if sdl.IsGameController(i) {
			controller := sdl.GameControllerOpen(i)
			if controller == nil {
				GetInternalLogger().Error("Failed to open game controller", "index", i)
				continue
			}
			globalInputProcessor.registerGameController(controller, i)
			continue
		}

		joystick := sdl.JoystickOpen(i)
		if joystick == nil {
			GetInternalLogger().Debug("Failed to open raw joystick", "index", i)
			continue
		}
		GetInternalLogger().Debug("Opened raw joystick", "index", i, "name", joystick.Name())
		rawJoysticks = append(rawJoysticks, joystick)
	}

	GetInternalLogger().Debug("Controller detection complete",
		"game_controllers", len(gameControllers),
		"raw_joysticks", len(rawJoysticks),
	)
}

// registerGameController remembers the controller's joystick instance ID;
// joy events carrying that ID duplicate the controller events.
func (ip *Processor) registerGameController(controller *sdl.GameController, index int) {
	id := controller.Joystick().InstanceID()
	if ip.IsGameControllerJoystick(id) {
		// Already open from startup detection; drop the extra reference.
		controller.Close()
		return
	}
	ip.RegisterGameControllerJoystick(id)
	GetInternalLogger().Debug("Opened game controller", "index", index, "instance_id", id, "name", controller.Name())
	gameControllers = append(gameControllers, controller)
}

// handleControllerDevice opens controllers plugged in after startup and
// forgets the ones removed. Added events carry a device index, removed
// events an instance ID.
func (ip *Processor) handleControllerDevice(e *sdl.ControllerDeviceEvent) {
	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		controller := sdl.GameControllerOpen(int(e.Which))
		if controller == nil {
			GetInternalLogger().Error("Failed to open game controller", "index", e.Which)
			return
		}
		ip.registerGameController(controller, int(e.Which))
	case sdl.CONTROLLERDEVICEREMOVED:
		ip.ForgetJoystick(e.Which)
		closeGameController(e.Which)
		GetInternalLogger().Debug("Game controller removed", "instance_id", e.Which)
	}
}

func closeGameController(id sdl.JoystickID) {
	for i, controller := range gameControllers {
		if controller != nil && controller.Joystick().InstanceID() == id {
			controller.Close()
			gameControllers = append(gameControllers[:i], gameControllers[i+1:]...)
			return
		}
	}
}

func GetInputProcessor() *Processor {
	return globalInputProcessor
}

// Processor turns raw SDL input into virtual button events. Hats and axes
// are tracked so that each direction produces exactly one press and one
// release.
type Processor struct {
	mapping                *InputMapping
	gameControllerJoystick map[sdl.JoystickID]bool
	axisStates             map[axisKey]int8
	hatStates              map[hatKey]uint8
	eventQueue             []*Event
}

type axisKey struct {
	source   Source
	joystick sdl.JoystickID
	axis     uint8
}

type hatKey struct {
	joystick sdl.JoystickID
	hat      uint8
}

func NewInputProcessor(mapping *InputMapping) *Processor {
	if mapping == nil {
		mapping = DefaultInputMapping()
	}
	return &Processor{
		mapping:                mapping,
		gameControllerJoystick: make(map[sdl.JoystickID]bool),
		axisStates:             make(map[axisKey]int8),
		hatStates:              make(map[hatKey]uint8),
	}
}

func (ip *Processor) RegisterGameControllerJoystick(id sdl.JoystickID) {
	ip.gameControllerJoystick[id] = true
}

func (ip *Processor) IsGameControllerJoystick(id sdl.JoystickID) bool {
	return ip.gameControllerJoystick[id]
}

// ForgetJoystick drops the controller mark and any held axis or hat state
// for a disconnected joystick.
func (ip *Processor) ForgetJoystick(id sdl.JoystickID) {
	delete(ip.gameControllerJoystick, id)
	for key := range ip.axisStates {
		if key.joystick == id {
			delete(ip.axisStates, key)
		}
	}
	for key := range ip.hatStates {
		if key.joystick == id {
			delete(ip.hatStates, key)
		}
	}
}

func (ip *Processor) ProcessSDLEvent(event sdl.Event) *Event {
	if len(ip.eventQueue) > 0 {
		evt := ip.eventQueue[0]
		ip.eventQueue = ip.eventQueue[1:]
		return evt
	}

	logger := GetInternalLogger()

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		if button, ok := ip.mapping.KeyboardMap[e.Keysym.Sym]; ok {
			logger.Debug("Keyboard input mapped",
				"key", sdl.GetKeyName(e.Keysym.Sym),
				"virtual_button", button.GetName(),
				"pressed", e.Type == sdl.KEYDOWN)
			return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN, Source: SourceKeyboard, RawCode: int(e.Keysym.Sym)}
		}
		logger.Debug("Keyboard input not mapped", "key", sdl.GetKeyName(e.Keysym.Sym))

	case *sdl.ControllerButtonEvent:
		code := sdl.GameControllerButton(e.Button)
		if button, ok := ip.mapping.ControllerButtonMap[code]; ok {
			logger.Debug("Controller button mapped",
				"button", sdl.GameControllerGetStringForButton(code),
				"virtual_button", button.GetName(),
				"pressed", e.Type == sdl.CONTROLLERBUTTONDOWN)
			return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN, Source: SourceController, RawCode: int(e.Button)}
		}
		logger.Debug("Controller button not mapped", "button", sdl.GameControllerGetStringForButton(code))

	case *sdl.ControllerDeviceEvent:
		ip.handleControllerDevice(e)

	case *sdl.ControllerAxisEvent:
		return ip.processAxis(axisKey{SourceController, e.Which, e.Axis}, e.Value)

	case *sdl.JoyButtonEvent:
		if ip.IsGameControllerJoystick(e.Which) {
			return nil
		}
		if button, ok := ip.mapping.JoystickButtonMap[e.Button]; ok {
			logger.Debug("Joy button mapped",
				"button", fmt.Sprintf("JoyButton%d", e.Button),
				"virtual_button", button.GetName())
			return &Event{Button: button, Pressed: e.Type == sdl.JOYBUTTONDOWN, Source: SourceJoystick, RawCode: int(e.Button)}
		}

	case *sdl.JoyAxisEvent:
		if ip.IsGameControllerJoystick(e.Which) {
			return nil
		}
		return ip.processAxis(axisKey{SourceJoystick, e.Which, e.Axis}, e.Value)

	case *sdl.JoyHatEvent:
		if ip.IsGameControllerJoystick(e.Which) {
			return nil
		}
		return ip.processHat(hatKey{e.Which, e.Hat}, e.Value)
	}

	return nil
}

// processHat emits the release of the previous direction before the press
// of the new one; the press is queued when both happen in one event.
func (ip *Processor) processHat(key hatKey, value uint8) *Event {
	previous := ip.hatStates[key]
	ip.hatStates[key] = value

	if previous == value {
		return nil
	}

	var release, press *Event
	if previous != sdl.HAT_CENTERED {
		if button, ok := ip.mapping.JoystickHatMap[previous]; ok {
			release = &Event{Button: button, Pressed: false, Source: SourceHatSwitch, RawCode: int(previous)}
		}
	}
	if value != sdl.HAT_CENTERED {
		if button, ok := ip.mapping.JoystickHatMap[value]; ok {
			press = &Event{Button: button, Pressed: true, Source: SourceHatSwitch, RawCode: int(value)}
		}
	}

	GetInternalLogger().Debug("Joy hat moved", "joystick", key.joystick, "hat", key.hat, "from", previous, "to", value)

	switch {
	case release != nil && press != nil:
		ip.eventQueue = append(ip.eventQueue, press)
		return release
	case release != nil:
		return release
	default:
		return press
	}
}

func (ip *Processor) processAxis(key axisKey, value int16) *Event {
	config, ok := ip.mapping.JoystickAxisMap[key.axis]
	if !ok {
		return nil
	}

	var state int8
	if value > config.Threshold {
		state = 1
	} else if value < -config.Threshold {
		state = -1
	}

	previous := ip.axisStates[key]
	if state == previous {
		return nil
	}
	ip.axisStates[key] = state

	buttonFor := func(s int8) *Event {
		switch s {
		case 1:
			return &Event{Button: config.PositiveButton, Source: key.source, RawCode: int(key.axis)}
		case -1:
			return &Event{Button: config.NegativeButton, Source: key.source, RawCode: int(key.axis)}
		}
		return nil
	}

	release := buttonFor(previous)
	press := buttonFor(state)
	if press != nil {
		press.Pressed = true
	}

	GetInternalLogger().Debug("Axis crossed threshold", "source", key.source, "joystick", key.joystick, "axis", key.axis, "value", value, "state", state)

	if release != nil {
		if press != nil {
			ip.eventQueue = append(ip.eventQueue, press)
		}
		return release
	}
	return press
}

func CloseAllControllers() {
	for _, controller := range gameControllers {
		if controller != nil {
			controller.Close()
		}
	}
	for _, joystick := range rawJoysticks {
		if joystick != nil {
			joystick.Close()
		}
	}
	gameControllers = nil
	rawJoysticks = nil
}
