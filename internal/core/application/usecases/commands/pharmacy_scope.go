package commands

import (
	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/errs"
)

// PharmacyScope limits a pharmacy action to the records of one pharmacy.
// The zero value, AnyFarmacia, does not limit anything.
type PharmacyScope struct {
	farmaciaID kernel.ID
}

var AnyFarmacia = PharmacyScope{}

func ForFarmacia(farmaciaID kernel.ID) (PharmacyScope, error) {
	if err := farmaciaID.Validate(); err != nil {
		return PharmacyScope{}, err
	}
	return PharmacyScope{farmaciaID: farmaciaID}, nil
}

func (s PharmacyScope) IsAny() bool {
	return s.farmaciaID.Validate() != nil
}

func (s PharmacyScope) FarmaciaID() kernel.ID {
	return s.farmaciaID
}

// check reports a record owned by another pharmacy as not found, so one
// pharmacy cannot tell which ids belong to the others.
func (s PharmacyScope) check(paramName string, id, owner kernel.ID) error {
	if s.IsAny() || owner.IsEqual(s.farmaciaID) {
		return nil
	}
	return errs.NewObjectNotFoundError(paramName, id.Int64())
}
