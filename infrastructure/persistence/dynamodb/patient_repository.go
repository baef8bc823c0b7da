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

// PatientRepository implements the patient store on DynamoDB using a
// single-table layout: PK=PATIENT#<id>, SK=METADATA
type PatientRepository struct {
	client    *dynamodb.Client
	tableName string
}

// patientRecord is the DynamoDB item shape for a patient
type patientRecord struct {
	PK           string `dynamodbav:"PK"`
	SK           string `dynamodbav:"SK"`
	EntityType   string `dynamodbav:"EntityType"`
	PatientID    string `dynamodbav:"PatientID"`
	Name         string `dynamodbav:"Name"`
	BirthDate    string `dynamodbav:"BirthDate"`
	Risk         string `dynamodbav:"Risk"`
	RegisteredAt string `dynamodbav:"RegisteredAt"`
}

const (
	patientEntityType = "PATIENT"
	metadataSK        = "METADATA"
	dateLayout        = "2006-01-02"
)

// NewPatientRepository creates a DynamoDB-backed patient repository
func NewPatientRepository(client *dynamodb.Client, tableName string) *PatientRepository {
	return &PatientRepository{
		client:    client,
		tableName: tableName,
	}
}

var _ ports.PatientRepository = (*PatientRepository)(nil)

// Save persists a patient item. An existing item with the same ID is
// overwritten.
func (r *PatientRepository) Save(ctx context.Context, patient *entities.Patient) error {
	if patient == nil || patient.ID().IsZero() {
		return pkgerrors.NewValidationError("cannot save patient without ID")
	}

	record := patientRecord{
		PK:           patientPK(patient.ID()),
		SK:           metadataSK,
		EntityType:   patientEntityType,
		PatientID:    patient.ID().String(),
		Name:         patient.Name(),
		BirthDate:    patient.BirthDate().Format(dateLayout),
		Risk:         patient.Risk().String(),
		RegisteredAt: patient.RegisteredAt().Format(time.RFC3339),
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

// FindByID returns the patient with the given ID
func (r *PatientRepository) FindByID(ctx context.Context, id valueobjects.PatientID) (*entities.Patient, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: patientPK(id)},
			"SK": &types.AttributeValueMemberS{Value: metadataSK},
		},
	})
	if err != nil {
		return nil, pkgerrors.NewStorageError("get", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("patient", id.String())
	}

	var record patientRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, pkgerrors.NewStorageError("unmarshal", err)
	}
	return recordToPatient(record)
}

// All returns every stored patient. Paginates the scan; never returns nil.
func (r *PatientRepository) All(ctx context.Context) ([]*entities.Patient, error) {
	filter := expression.Name("EntityType").Equal(expression.Value(patientEntityType))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, pkgerrors.NewStorageError("scan", err)
	}

	patients := make([]*entities.Patient, 0)
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

		for _, item := range result.Items {
			var record patientRecord
			if err := attributevalue.UnmarshalMap(item, &record); err != nil {
				return nil, pkgerrors.NewStorageError("unmarshal", err)
			}
			patient, err := recordToPatient(record)
			if err != nil {
				return nil, err
			}
			patients = append(patients, patient)
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastKey = result.LastEvaluatedKey
	}

	return patients, nil
}

func patientPK(id valueobjects.PatientID) string {
	return fmt.Sprintf("PATIENT#%s", id.String())
}

func recordToPatient(record patientRecord) (*entities.Patient, error) {
	id, err := valueobjects.NewPatientID(record.PatientID)
	if err != nil {
		return nil, pkgerrors.NewStorageError("unmarshal", err)
	}
	birthDate, err := time.Parse(dateLayout, record.BirthDate)
	if err != nil {
		return nil, pkgerrors.NewStorageError("unmarshal", fmt.Errorf("bad birth date %q: %w", record.BirthDate, err))
	}
	registeredAt, _ := time.Parse(time.RFC3339, record.RegisteredAt)
	return entities.ReconstructPatient(id, record.Name, birthDate, record.Risk, registeredAt), nil
}
