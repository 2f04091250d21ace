package services

import (
	"github.com/goswift/booking-backend/internal/models"
)

// ToView flattens a joined booking row. Any reference that the join could not
// resolve fails the whole view with an integrity error; partial views are
// never produced.
func ToView(r models.BookingRecord) (models.BookingView, error) {
	missing := func(what string) (models.BookingView, error) {
		return models.BookingView{}, integrity(CodeBrokenReference, "booking %s references a missing %s", r.BookingID, what)
	}

	switch {
	case !r.UserID.Valid:
		return missing("user")
	case !r.ScheduleID.Valid:
		return missing("schedule")
	case !r.BusID.Valid:
		return missing("bus")
	case !r.AgencyID.Valid:
		return missing("agency")
	case !r.SourceCityID.Valid:
		return missing("source city")
	case !r.DestCityID.Valid:
		return missing("destination city")
	}

	status := models.BookingStatus(r.Status)
	if !status.Valid() {
		return models.BookingView{}, invalid(CodeInvalidStatus, "booking %s has unknown status %q", r.BookingID, r.Status)
	}

	return models.BookingView{
		BookingID:    r.BookingID,
		BookingRefNo: r.BookingRefNo,
		BookingDate:  r.BookingDate,
		JourneyDate:  r.JourneyDate,
		TotalFare:    r.TotalFare,
		Status:       status,

		UserID:        r.UserID.UUID,
		UserEmail:     r.UserEmail.String,
		UserFirstName: r.UserFirstName.String,
		UserLastName:  r.UserLastName.String,

		ScheduleID: r.ScheduleID.UUID,

		BusID:          r.BusID.UUID,
		RegistrationNo: r.BusRegistrationNo.String,
		BusType:        r.BusType.String,

		AgencyID:   r.AgencyID.UUID,
		AgencyName: r.AgencyName.String,

		SourceCityID:   r.SourceCityID.UUID,
		SourceCityName: r.SourceCityName.String,
		DestCityID:     r.DestCityID.UUID,
		DestCityName:   r.DestCityName.String,
	}, nil
}

// ToViews assembles every record, stopping at the first broken one
func ToViews(records []models.BookingRecord) ([]models.BookingView, error) {
	views := make([]models.BookingView, 0, len(records))
	for _, r := range records {
		v, err := ToView(r)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
