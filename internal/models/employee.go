package models

// Employee is a staff record. The API only reads the full listing for reports.
type Employee struct {
	ID    uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Nome  string `json:"nome" gorm:"column:nome;size:100;not null"`
	Cargo string `json:"cargo" gorm:"column:cargo;size:50"`
	CPF   string `json:"cpf" gorm:"column:cpf;size:14;uniqueIndex"`
}

// TableName overrides the GORM default table name.
func (Employee) TableName() string {
	return "funcionarios"
}
