package dynamodb

import (
	"context"
	"fmt"
	"time"

	"mentcare/application/ports"
	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
	pkgerrors "mentcare/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AppointmentRepository implements the appointment store on DynamoDB:
// PK=PATIENT#<patient_id>, SK=APPT#<when>#<id>
type AppointmentRepository struct {
	client    *dynamodb.Client
	tableName string
}

type appointmentRecord struct {
	PK            string `dynamodbav:"PK"`
	SK            string `dynamodbav:"SK"`
	EntityType    string `dynamodbav:"EntityType"`
	AppointmentID string `dynamodbav:"AppointmentID"`
	PatientID     string `dynamodbav:"PatientID"`
	When          string `dynamodbav:"When"`
	Reason        string `dynamodbav:"Reason,omitempty"`
}

const appointmentEntityType = "APPOINTMENT"

// NewAppointmentRepository creates a DynamoDB-backed appointment repository
func NewAppointmentRepository(client *dynamodb.Client, tableName string) *AppointmentRepository {
	return &AppointmentRepository{
		client:    client,
		tableName: tableName,
	}
}

var _ ports.AppointmentRepository = (*AppointmentRepository)(nil)

// Add persists one appointment item
func (r *AppointmentRepository) Add(ctx context.Context, appointment *entities.Appointment) error {
	if appointment == nil || appointment.PatientID().IsZero() {
		return pkgerrors.NewValidationError("cannot save appointment without patient ID")
	}

	record := appointmentRecord{
		PK:            patientPK(appointment.PatientID()),
		SK:            fmt.Sprintf("APPT#%s#%s", appointment.When().Format(time.RFC3339), appointment.ID()),
		EntityType:    appointmentEntityType,
		AppointmentID: appointment.ID(),
		PatientID:     appointment.PatientID().String(),
		When:          appointment.When().Format(time.RFC3339),
		Reason:        appointment.Reason(),
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return pkgerrors.NewStorageError("marshal", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return pkgerrors.NewStorageError("put", err)
	}
	return nil
}

// All returns every stored appointment. Never nil.
func (r *AppointmentRepository) All(ctx context.Context) ([]*entities.Appointment, error) {
	filter := expression.Name("EntityType").Equal(expression.Value(appointmentEntityType))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, pkgerrors.NewStorageError("scan", err)
	}

	appointments := make([]*entities.Appointment, 0)
	var lastKey map[string]types.AttributeValue

	for {
		result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, pkgerrors.NewStorageError("scan", err)
		}

		parsed, err := itemsToAppointments(result.Items)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, parsed...)

		if result.LastEvaluatedKey == nil {
			break
		}
		lastKey = result.LastEvaluatedKey
	}

	return appointments, nil
}

// ByPatient queries one patient's appointment items. Never nil.
func (r *AppointmentRepository) ByPatient(ctx context.Context, id valueobjects.PatientID) ([]*entities.Appointment, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(patientPK(id))).
		And(expression.Key("SK").BeginsWith("APPT#"))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewStorageError("query", err)
	}

	result, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, pkgerrors.NewStorageError("query", err)
	}

	return itemsToAppointments(result.Items)
}

func itemsToAppointments(items []map[string]types.AttributeValue) ([]*entities.Appointment, error) {
	appointments := make([]*entities.Appointment, 0, len(items))
	for _, item := range items {
		var record appointmentRecord
		if err := attributevalue.UnmarshalMap(item, &record); err != nil {
			return nil, pkgerrors.NewStorageError("unmarshal", err)
		}

		id, err := valueobjects.NewPatientID(record.PatientID)
		if err != nil {
			return nil, pkgerrors.NewStorageError("unmarshal", err)
		}
		when, err := time.Parse(time.RFC3339, record.When)
		if err != nil {
			return nil, pkgerrors.NewStorageError("unmarshal", fmt.Errorf("bad appointment time %q: %w", record.When, err))
		}
		appointments = append(appointments, entities.ReconstructAppointment(record.AppointmentID, id, when, record.Reason))
	}
	return appointments, nil
}
