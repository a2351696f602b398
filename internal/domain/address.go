package domain

type Address struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	FirstName       string `json:"first_name" gorm:"type:varchar(255)"`
	LastName        string `json:"last_name" gorm:"type:varchar(255)"`
	Email           string `json:"email" gorm:"type:varchar(255)"`
	PhoneNumber     string `json:"phone_number" gorm:"type:varchar(64)"`
	Address1        string `json:"address1" gorm:"type:varchar(255)"`
	Address2        string `json:"address2" gorm:"type:varchar(255)"`
	City            string `json:"city" gorm:"type:varchar(255)"`
	StateProvinceID *int64 `json:"state_province_id"`
	CountryID       *int64 `json:"country_id"`
	ZipPostalCode   string `json:"zip_postal_code" gorm:"type:varchar(32)"`
}

func (Address) TableName() string {
	return "addresses"
}

type Country struct {
	ID               int64  `json:"id" gorm:"primaryKey"`
	Name             string `json:"name" gorm:"type:varchar(255);not null"`
	TwoLetterISOCode string `json:"two_letter_iso_code" gorm:"column:two_letter_iso_code;type:varchar(2);not null"`
}

func (Country) TableName() string {
	return "countries"
}

type StateProvince struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	CountryID    int64  `json:"country_id" gorm:"not null;index"`
	Name         string `json:"name" gorm:"type:varchar(255);not null"`
	Abbreviation string `json:"abbreviation" gorm:"type:varchar(8);not null"`
}

func (StateProvince) TableName() string {
	return "state_provinces"
}
