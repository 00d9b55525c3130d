package cases

import (
	"fmt"
	"strings"
	"time"

	"casefile/internal/shared/biztime"
)

// Respondent is the party a case is filed against. Each case owns exactly
// one respondent; the respondent never outlives its case.
type Respondent struct {
	id         uint
	caseID     uint
	firstName  string
	middleName string
	lastName   string
	suffix     string
	street     string
	city       string
	state      string
	postalCode string
	createdAt  time.Time
}

func NewRespondent(firstName, middleName, lastName, suffix, street, city, state, postalCode string) (*Respondent, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)

	if firstName == "" {
		return nil, fmt.Errorf("respondent first name is required")
	}
	if lastName == "" {
		return nil, fmt.Errorf("respondent last name is required")
	}
	if street == "" {
		return nil, fmt.Errorf("respondent street address is required")
	}
	if city == "" {
		return nil, fmt.Errorf("respondent city is required")
	}

	return &Respondent{
		firstName:  firstName,
		middleName: strings.TrimSpace(middleName),
		lastName:   lastName,
		suffix:     strings.TrimSpace(suffix),
		street:     street,
		city:       city,
		state:      strings.TrimSpace(state),
		postalCode: strings.TrimSpace(postalCode),
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructRespondent(
	id uint,
	caseID uint,
	firstName, middleName, lastName, suffix string,
	street, city, state, postalCode string,
	createdAt time.Time,
) (*Respondent, error) {
	if id == 0 {
		return nil, fmt.Errorf("respondent ID cannot be zero")
	}
	if caseID == 0 {
		return nil, fmt.Errorf("respondent case ID cannot be zero")
	}

	return &Respondent{
		id:         id,
		caseID:     caseID,
		firstName:  firstName,
		middleName: middleName,
		lastName:   lastName,
		suffix:     suffix,
		street:     street,
		city:       city,
		state:      state,
		postalCode: postalCode,
		createdAt:  createdAt,
	}, nil
}

func (r *Respondent) ID() uint            { return r.id }
func (r *Respondent) CaseID() uint        { return r.caseID }
func (r *Respondent) FirstName() string   { return r.firstName }
func (r *Respondent) MiddleName() string  { return r.middleName }
func (r *Respondent) LastName() string    { return r.lastName }
func (r *Respondent) Suffix() string      { return r.suffix }
func (r *Respondent) Street() string      { return r.street }
func (r *Respondent) City() string        { return r.city }
func (r *Respondent) State() string       { return r.state }
func (r *Respondent) PostalCode() string  { return r.postalCode }
func (r *Respondent) CreatedAt() time.Time { return r.createdAt }

func (r *Respondent) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("respondent ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("respondent ID cannot be zero")
	}
	r.id = id
	return nil
}

// BindToCase links the respondent to its owning case. Done once, at
// creation time, after the case row has an ID.
func (r *Respondent) BindToCase(caseID uint) error {
	if r.caseID != 0 {
		return fmt.Errorf("respondent is already bound to a case")
	}
	if caseID == 0 {
		return fmt.Errorf("case ID cannot be zero")
	}
	r.caseID = caseID
	return nil
}

// FullName renders the structured name parts as a single display string.
func (r *Respondent) FullName() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{r.firstName, r.middleName, r.lastName, r.suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
