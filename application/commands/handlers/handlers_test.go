package handlers

import (
	"context"
	"errors"

	"mentcare/application/ports"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	pkgerrors "mentcare/pkg/errors"
)

// callLog records side effects in order so tests can assert ordering
// guarantees like "notify before save"
type callLog struct {
	calls []string
}

func (l *callLog) add(call string) {
	l.calls = append(l.calls, call)
}

type fakePatientRepo struct {
	log      *callLog
	patients map[string]*entities.Patient
	saveErr  error
}

func newFakePatientRepo(log *callLog) *fakePatientRepo {
	return &fakePatientRepo{
		log:      log,
		patients: make(map[string]*entities.Patient),
	}
}

func (r *fakePatientRepo) Save(ctx context.Context, patient *entities.Patient) error {
	r.log.add("save:" + patient.ID().String())
	if r.saveErr != nil {
		return r.saveErr
	}
	r.patients[patient.ID().String()] = patient
	return nil
}

func (r *fakePatientRepo) FindByID(ctx context.Context, id valueobjects.PatientID) (*entities.Patient, error) {
	patient, ok := r.patients[id.String()]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("patient", id.String())
	}
	return patient, nil
}

func (r *fakePatientRepo) All(ctx context.Context) ([]*entities.Patient, error) {
	result := make([]*entities.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		result = append(result, p)
	}
	return result, nil
}

type fakeAppointmentRepo struct {
	log          *callLog
	appointments []*entities.Appointment
}

func newFakeAppointmentRepo(log *callLog) *fakeAppointmentRepo {
	return &fakeAppointmentRepo{log: log}
}

func (r *fakeAppointmentRepo) Add(ctx context.Context, appointment *entities.Appointment) error {
	r.log.add("add-appointment")
	r.appointments = append(r.appointments, appointment)
	return nil
}

func (r *fakeAppointmentRepo) All(ctx context.Context) ([]*entities.Appointment, error) {
	result := make([]*entities.Appointment, 0, len(r.appointments))
	result = append(result, r.appointments...)
	return result, nil
}

func (r *fakeAppointmentRepo) ByPatient(ctx context.Context, id valueobjects.PatientID) ([]*entities.Appointment, error) {
	result := make([]*entities.Appointment, 0)
	for _, a := range r.appointments {
		if a.PatientID().Equals(id) {
			result = append(result, a)
		}
	}
	return result, nil
}

type sinkCall struct {
	subject string
	message string
}

type fakeAlertSink struct {
	log       *callLog
	alerts    []sinkCall
	notifyErr error
}

func newFakeAlertSink(log *callLog) *fakeAlertSink {
	return &fakeAlertSink{log: log}
}

func (s *fakeAlertSink) Notify(ctx context.Context, subject, message string) error {
	s.log.add("notify")
	if s.notifyErr != nil {
		return s.notifyErr
	}
	s.alerts = append(s.alerts, sinkCall{subject: subject, message: message})
	return nil
}

type fakePublisher struct {
	published []interface{}
}

func (p *fakePublisher) Publish(ctx context.Context, payloads ...interface{}) error {
	p.published = append(p.published, payloads...)
	return nil
}

var errSinkDown = errors.New("sink unavailable")

var (
	_ ports.PatientRepository     = (*fakePatientRepo)(nil)
	_ ports.AppointmentRepository = (*fakeAppointmentRepo)(nil)
	_ ports.AlertSink             = (*fakeAlertSink)(nil)
	_ ports.EventPublisher        = (*fakePublisher)(nil)
)
