package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

const MappingPathEnvVar = "INPUT_MAPPING_PATH"

var inputMappingBytes []byte

func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

type Source int

const (
	SourceKeyboard Source = iota
	SourceController
	SourceJoystick
	SourceHatSwitch
)

type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  Source
	RawCode int
}

type JoystickAxisMapping struct {
	PositiveButton constants.VirtualButton
	NegativeButton constants.VirtualButton
	Threshold      int16
}

type InputMapping struct {
	KeyboardMap         map[sdl.Keycode]constants.VirtualButton
	ControllerButtonMap map[sdl.GameControllerButton]constants.VirtualButton
	JoystickAxisMap     map[uint8]JoystickAxisMapping
	JoystickButtonMap   map[uint8]constants.VirtualButton
	JoystickHatMap      map[uint8]constants.VirtualButton
}

type axisMappingJSON struct {
	PositiveButton int   `json:"positive_button"`
	NegativeButton int   `json:"negative_button"`
	Threshold      int16 `json:"threshold"`
}

// mappingJSON is the on-disk form. Keys are SDL codes, values are
// VirtualButton ordinals.
type mappingJSON struct {
	KeyboardMap         map[int]int             `json:"keyboard_map"`
	ControllerButtonMap map[int]int             `json:"controller_button_map"`
	JoystickAxisMap     map[int]axisMappingJSON `json:"joystick_axis_map"`
	JoystickButtonMap   map[int]int             `json:"joystick_button_map"`
	JoystickHatMap      map[int]int             `json:"joystick_hat_map"`
}

func DefaultInputMapping() *InputMapping {
	return &InputMapping{
		KeyboardMap: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_a:         constants.VirtualButtonA,
			sdl.K_RETURN:    constants.VirtualButtonA,
			sdl.K_b:         constants.VirtualButtonB,
			sdl.K_ESCAPE:    constants.VirtualButtonB,
			sdl.K_BACKSPACE: constants.VirtualButtonB,
			sdl.K_x:         constants.VirtualButtonX,
			sdl.K_y:         constants.VirtualButtonY,
			sdl.K_SPACE:     constants.VirtualButtonSelect,
			sdl.K_h:         constants.VirtualButtonMenu,
		},
		ControllerButtonMap: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
			sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
			sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonY,
			sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonX,
			sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
			sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
			sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
		},
		JoystickAxisMap:   map[uint8]JoystickAxisMapping{},
		JoystickButtonMap: map[uint8]constants.VirtualButton{},
		JoystickHatMap: map[uint8]constants.VirtualButton{
			sdl.HAT_UP:    constants.VirtualButtonUp,
			sdl.HAT_DOWN:  constants.VirtualButtonDown,
			sdl.HAT_LEFT:  constants.VirtualButtonLeft,
			sdl.HAT_RIGHT: constants.VirtualButtonRight,
		},
	}
}

// GetInputMapping resolves the mapping from bytes set with
// SetInputMappingBytes, then INPUT_MAPPING_PATH, then the defaults.
func GetInputMapping() *InputMapping {
	logger := GetInternalLogger()

	if len(inputMappingBytes) > 0 {
		mapping, err := LoadInputMappingFromBytes(inputMappingBytes)
		if err == nil {
			logger.Info("Loaded custom input mapping from embedded bytes")
			return mapping
		}
		logger.Warn("Failed to load custom input mapping from bytes, trying file path", "error", err)
	}

	if mappingPath := os.Getenv(MappingPathEnvVar); mappingPath != "" {
		mapping, err := LoadInputMappingFromJSON(mappingPath)
		if err == nil {
			logger.Info("Loaded custom input mapping from environment variable", "path", mappingPath)
			return mapping
		}
		logger.Warn("Failed to load custom input mapping, using default", "path", mappingPath, "error", err)
	}

	return DefaultInputMapping()
}

func LoadInputMappingFromJSON(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var raw mappingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := &InputMapping{
		KeyboardMap:         make(map[sdl.Keycode]constants.VirtualButton, len(raw.KeyboardMap)),
		ControllerButtonMap: make(map[sdl.GameControllerButton]constants.VirtualButton, len(raw.ControllerButtonMap)),
		JoystickAxisMap:     make(map[uint8]JoystickAxisMapping, len(raw.JoystickAxisMap)),
		JoystickButtonMap:   make(map[uint8]constants.VirtualButton, len(raw.JoystickButtonMap)),
		JoystickHatMap:      make(map[uint8]constants.VirtualButton, len(raw.JoystickHatMap)),
	}

	for code, button := range raw.KeyboardMap {
		mapping.KeyboardMap[sdl.Keycode(code)] = constants.VirtualButton(button)
	}
	for code, button := range raw.ControllerButtonMap {
		mapping.ControllerButtonMap[sdl.GameControllerButton(code)] = constants.VirtualButton(button)
	}
	for axis, m := range raw.JoystickAxisMap {
		mapping.JoystickAxisMap[uint8(axis)] = JoystickAxisMapping{
			PositiveButton: constants.VirtualButton(m.PositiveButton),
			NegativeButton: constants.VirtualButton(m.NegativeButton),
			Threshold:      m.Threshold,
		}
	}
	for code, button := range raw.JoystickButtonMap {
		mapping.JoystickButtonMap[uint8(code)] = constants.VirtualButton(button)
	}
	for hat, button := range raw.JoystickHatMap {
		mapping.JoystickHatMap[uint8(hat)] = constants.VirtualButton(button)
	}

	return mapping, nil
}
