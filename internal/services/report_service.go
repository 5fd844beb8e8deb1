package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"loja/internal/repositories"
)

// EmployeeReportFilename is the attachment name of the employee CSV export.
const EmployeeReportFilename = "relatorio_funcionarios.csv"

var employeeReportHeader = []string{"ID", "Nome", "Cargo", "CPF"}

// ReportService renders exports built from store listings.
type ReportService struct {
	employeeRepo repositories.EmployeeRepository
}

// NewReportService creates a new ReportService.
func NewReportService(employeeRepo repositories.EmployeeRepository) *ReportService {
	return &ReportService{
		employeeRepo: employeeRepo,
	}
}

// ExportEmployeesCSV renders every employee as CSV, header first, CRLF line endings.
// The whole report is built in memory.
func (s *ReportService) ExportEmployeesCSV() ([]byte, error) {
	employees, err := s.employeeRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(employeeReportHeader); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}
	for _, e := range employees {
		row := []string{strconv.FormatUint(uint64(e.ID), 10), e.Nome, e.Cargo, e.CPF}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write employee %d: %w", e.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}
	return buf.Bytes(), nil
}
