package pedido

import (
	"fmt"

	"farmadelivery/internal/pkg/errs"
)

// Status is the lifecycle state of a Pedido.
//
//	Pendiente ──confirm recipe──> Preparando ──ready──> Listo ──dispatch──> EnCamino ──deliver──> Entregado
//	    │                            ▲   │                 │                   ▲
//	    │        Confirmado ─────────┘   └──dispatch───────┼───────────────────┘
//	    │            │                                     └──courier accepts──┘
//	    └────────────┴──── cancel (Pendiente, Confirmado, Preparando) ──> Cancelado
type Status int

const (
	Unknown Status = iota
	Pendiente
	Confirmado
	Preparando
	Listo
	EnCamino
	Entregado
	Cancelado
)

var statusCodes = map[Status]string{
	Pendiente:  "PENDIENTE",
	Confirmado: "CONFIRMADO",
	Preparando: "PREPARANDO",
	Listo:      "LISTO",
	EnCamino:   "EN_CAMINO",
	Entregado:  "ENTREGADO",
	Cancelado:  "CANCELADO",
}

var statusLabels = map[Status]string{
	Pendiente:  "Pendiente",
	Confirmado: "Confirmado",
	Preparando: "Preparando",
	Listo:      "Listo para entrega",
	EnCamino:   "En Camino",
	Entregado:  "Entregado",
	Cancelado:  "Cancelado",
}

// ParseStatus reads the wire code, e.g. "EN_CAMINO".
func ParseStatus(code string) (Status, error) {
	for s, c := range statusCodes {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", code))
}

func (s Status) Validate() error {
	if _, ok := statusCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code, or "UNKNOWN".
func (s Status) String() string {
	if c, ok := statusCodes[s]; ok {
		return c
	}
	return "UNKNOWN"
}

// Label is the human readable Spanish name shown on cards.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return s.String()
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Entregado || s == Cancelado
}

// ConfirmRecipe: Pendiente -> Preparando.
func (s Status) ConfirmRecipe() (Status, error) {
	if s != Pendiente {
		return Unknown, transitionError(s, "confirm recipe")
	}
	return Preparando, nil
}

// Cancel: Pendiente | Confirmado | Preparando -> Cancelado.
func (s Status) Cancel() (Status, error) {
	if s != Pendiente && s != Confirmado && s != Preparando {
		return Unknown, transitionError(s, "cancel")
	}
	return Cancelado, nil
}

// MarkReady: Confirmado | Preparando -> Listo.
func (s Status) MarkReady() (Status, error) {
	if s != Confirmado && s != Preparando {
		return Unknown, transitionError(s, "mark ready for pickup")
	}
	return Listo, nil
}

// Dispatch: Preparando | Listo -> EnCamino.
func (s Status) Dispatch() (Status, error) {
	if s != Preparando && s != Listo {
		return Unknown, transitionError(s, "dispatch")
	}
	return EnCamino, nil
}

// ValidateAccept checks that a courier may take the order in this status.
func (s Status) ValidateAccept() error {
	if s != Listo && s != EnCamino {
		return transitionError(s, "accept")
	}
	return nil
}

// Accept: Listo | EnCamino -> EnCamino.
func (s Status) Accept() (Status, error) {
	if err := s.ValidateAccept(); err != nil {
		return Unknown, err
	}
	return EnCamino, nil
}

// Deliver: EnCamino -> Entregado.
func (s Status) Deliver() (Status, error) {
	if s != EnCamino {
		return Unknown, transitionError(s, "deliver")
	}
	return Entregado, nil
}

func transitionError(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action),
	)
}
