package domain

import (
	"fmt"
	"strings"

	"github.com/olusolaa/colorful-logging/internal/errors"
)

// FieldKind names the part of a rendered log line being colorized.
type FieldKind uint8

const (
	FieldLevel FieldKind = iota
	FieldMessage
	FieldComponent
)

func (f FieldKind) String() string {
	switch f {
	case FieldLevel:
		return "level"
	case FieldMessage:
		return "message"
	case FieldComponent:
		return "component"
	default:
		return fmt.Sprintf("FieldKind(%d)", uint8(f))
	}
}

func FieldKinds() []FieldKind {
	return []FieldKind{FieldLevel, FieldMessage, FieldComponent}
}

func ParseFieldKind(name string) (FieldKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "level":
		return FieldLevel, nil
	case "message", "msg":
		return FieldMessage, nil
	case "component", "logger", "package":
		return FieldComponent, nil
	default:
		return 0, errors.NewUserFacing(errors.CodeInvalidFieldKind,
			fmt.Sprintf("unknown log field %q", name),
			"Use one of: level, message, component.")
	}
}

func (f FieldKind) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
