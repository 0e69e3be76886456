// internal/ads/ads.go
package ads

import (
	"context"
	"errors"
	"fmt"
)

// AdState — состояние рекламного блока
type AdState int32

const (
	AdStateUnloaded AdState = iota
	AdStateLoading
	AdStateLoaded
	AdStateShowing
)

func (s AdState) String() string {
	switch s {
	case AdStateLoading:
		return "loading"
	case AdStateLoaded:
		return "loaded"
	case AdStateShowing:
		return "showing"
	default:
		return "unloaded"
	}
}

// EventKind — события, которые присылает SDK медиации
type EventKind int

const (
	EventLoaded EventKind = iota
	EventFailedLoad
	EventUserRewarded
	EventClosed
	EventImpression
)

// Reward — награда за просмотр
type Reward struct {
	Type   string
	Amount string
}

// Event — событие от рекламного блока
type Event struct {
	Kind       EventKind
	AdUnitID   string
	Reward     Reward
	Err        error
	Impression map[string]interface{}
}

// S2SRedeemData — данные для проверки награды на стороне сервера
type S2SRedeemData struct {
	UserID     string
	CustomData string
}

// ShowOptions — параметры показа ролика
type ShowOptions struct {
	AutoReload bool
	S2S        *S2SRedeemData
}

// RewardProvider — возможности SDK, которыми пользуется игра.
// Initialize, Load и Show могут блокироваться; исход показа приходит
// событиями через Events.
type RewardProvider interface {
	Initialize(ctx context.Context) error
	Load(ctx context.Context) error
	Show(ctx context.Context, opts ShowOptions) error
	State() AdState
	Events() <-chan Event
	Close() error
}

var (
	ErrUnavailable = errors.New("ads: mediation unavailable")
	ErrNotLoaded   = errors.New("ads: ad not loaded")
	ErrNoFill      = errors.New("ads: no fill")
	ErrBusy        = errors.New("ads: reward request already pending")
)

// InitErrorCode — причина неудачной инициализации SDK
type InitErrorCode int

const (
	InitErrorUnknown InitErrorCode = iota
	InitErrorInvalidArgument
	InitErrorNetwork
)

func (c InitErrorCode) String() string {
	switch c {
	case InitErrorInvalidArgument:
		return "InvalidArgument"
	case InitErrorNetwork:
		return "Network"
	default:
		return "Unknown"
	}
}

// InitializationError — ошибка инициализации с кодом причины
type InitializationError struct {
	Code InitErrorCode
	Err  error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("ads: initialization failed: %s: %v", e.Code, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// InitErrorCodeOf достаёт код из цепочки ошибок
func InitErrorCodeOf(err error) InitErrorCode {
	var initErr *InitializationError
	if errors.As(err, &initErr) {
		return initErr.Code
	}
	return InitErrorUnknown
}
