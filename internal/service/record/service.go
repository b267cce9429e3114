package record

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
)

const (
	addedMessage   = "Record added successfully"
	updatedMessage = "Update successful"
	deletedMessage = "Delete successful"
)

type RecordServiceImpl struct {
	recordRepo record.RecordRepository
}

func NewRecordService(recordRepo record.RecordRepository) record.RecordService {
	return &RecordServiceImpl{recordRepo: recordRepo}
}

// GetRecord implements record.RecordService.
func (s *RecordServiceImpl) GetRecord(ctx context.Context, table string, employeeID int64) (record.Record, error) {
	t, err := readableTable(table)
	if err != nil {
		return nil, err
	}
	return s.recordRepo.FindFirst(ctx, t, employeeID)
}

// GetAllRecords implements record.RecordService.
func (s *RecordServiceImpl) GetAllRecords(ctx context.Context, table string, employeeID int64) ([]record.Record, error) {
	t, err := readableTable(table)
	if err != nil {
		return nil, err
	}
	records, err := s.recordRepo.FindAll(ctx, t, employeeID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, record.ErrRecordsNotFound
	}
	return records, nil
}

// AddRecord implements record.RecordService. Every insertable field of the
// table is required.
func (s *RecordServiceImpl) AddRecord(ctx context.Context, table string, req record.AddRecordRequest) (record.AddRecordResponse, error) {
	t, err := record.Lookup(table)
	if err != nil {
		return record.AddRecordResponse{}, err
	}
	if !t.CanInsert() {
		return record.AddRecordResponse{}, record.ErrOperationNotAllowed
	}

	var errs validator.ValidationErrors

	employeeID, err := record.ParseID("employee_id", req["employee_id"])
	if err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	coerced := make(map[string]any, len(t.Insertable))
	for _, f := range t.Insertable {
		raw, ok := req[f.Name]
		if !ok || raw == nil {
			errs = append(errs, validator.ValidationError{Field: f.Name, Message: f.Name + " is required"})
			continue
		}
		v, err := record.Coerce(f.Name, f.Kind, raw)
		if err != nil {
			errs = append(errs, err.(validator.ValidationErrors)...)
			continue
		}
		coerced[f.Name] = v
	}
	if len(errs) > 0 {
		return record.AddRecordResponse{}, errs
	}
	if t.Check != nil {
		if errs := t.Check(coerced); len(errs) > 0 {
			return record.AddRecordResponse{}, errs
		}
	}

	values := []record.ColumnValue{{Column: "employee_id", Value: employeeID}}
	for _, f := range t.Insertable {
		values = append(values, record.ColumnValue{Column: f.Name, Value: coerced[f.Name]})
	}
	for _, d := range t.Derived {
		values = append(values, record.ColumnValue{Column: d.Column, Value: coerced[d.From]})
	}

	id, err := s.recordRepo.Insert(ctx, t, values)
	if err != nil {
		return record.AddRecordResponse{}, err
	}

	slog.Info("record added", "table", t.Name, "id", id, "employee_id", employeeID)
	return record.AddRecordResponse{Message: addedMessage, ID: id}, nil
}

// UpdateData implements record.RecordService. Only allow-listed columns can
// be changed.
func (s *RecordServiceImpl) UpdateData(ctx context.Context, table string, req record.UpdateDataRequest) (record.AffectedResponse, error) {
	t, err := record.Lookup(table)
	if err != nil {
		return record.AffectedResponse{}, err
	}
	if !t.CanUpdate() {
		return record.AffectedResponse{}, record.ErrOperationNotAllowed
	}
	if req.ID == nil || len(req.Updates) == 0 {
		return record.AffectedResponse{}, record.ErrNoUpdates
	}

	id, err := record.ParseID("id", req.ID)
	if err != nil {
		return record.AffectedResponse{}, err
	}

	// Sorted so the generated statement is stable for a given body.
	columns := make([]string, 0, len(req.Updates))
	for col := range req.Updates {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	var errs validator.ValidationErrors
	values := make([]record.ColumnValue, 0, len(columns))
	for _, col := range columns {
		f, ok := t.UpdatableField(col)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   col,
				Message: fmt.Sprintf("%s cannot be updated on %s", col, t.Name),
			})
			continue
		}
		v, err := record.Coerce(f.Name, f.Kind, req.Updates[col])
		if err != nil {
			errs = append(errs, err.(validator.ValidationErrors)...)
			continue
		}
		values = append(values, record.ColumnValue{Column: f.Name, Value: v})
	}
	if len(errs) > 0 {
		return record.AffectedResponse{}, errs
	}

	affected, err := s.recordRepo.Update(ctx, t, id, values)
	if err != nil {
		return record.AffectedResponse{}, err
	}
	if affected == 0 {
		return record.AffectedResponse{}, record.ErrRecordNotFound
	}

	slog.Info("record updated", "table", t.Name, "id", id, "columns", columns)
	return record.AffectedResponse{Message: updatedMessage, AffectedRows: affected}, nil
}

// DeleteData implements record.RecordService.
func (s *RecordServiceImpl) DeleteData(ctx context.Context, table string, id int64) (record.AffectedResponse, error) {
	t, err := record.Lookup(table)
	if err != nil {
		return record.AffectedResponse{}, err
	}
	if !t.Deletable {
		return record.AffectedResponse{}, record.ErrOperationNotAllowed
	}

	affected, err := s.recordRepo.Delete(ctx, t, id)
	if err != nil {
		return record.AffectedResponse{}, err
	}
	if affected == 0 {
		return record.AffectedResponse{}, record.ErrRecordNotFound
	}

	slog.Info("record deleted", "table", t.Name, "id", id)
	return record.AffectedResponse{Message: deletedMessage, AffectedRows: affected}, nil
}

func readableTable(name string) (record.Table, error) {
	t, err := record.Lookup(name)
	if err != nil {
		return record.Table{}, err
	}
	if !t.Readable {
		return record.Table{}, record.ErrInvalidTable
	}
	return t, nil
}
