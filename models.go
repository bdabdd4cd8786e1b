package main

// beeFormInput is the form-encoded request body for POST /calculate_bee/.
// Binding tags enforce presence and physiological ranges (age 1-150, positive
// weight and height) — violations surface as 422 before the calculation runs.
// Enum checks on unit_system and biological_sex live in calculateBEE instead,
// so the calculator stays safe to call directly and can answer with a
// descriptive 400.
type beeFormInput struct {
	UnitSystem    string  `form:"unit_system,default=metric"`
	Age           int     `form:"age" binding:"required,gte=1,lte=150"`
	BiologicalSex string  `form:"biological_sex" binding:"required"`
	Weight        float64 `form:"weight" binding:"required,gt=0"`
	Height        float64 `form:"height" binding:"required,gt=0"`
	ActivityLevel string  `form:"activity_level" binding:"required"`
}

// beeFormOutput is the JSON response for POST /calculate_bee/. Energy values
// are kcal/day and kJ/day, rounded to 2 decimals; ActivityFactor is the
// multiplier that was applied to BEE to get TDEE.
type beeFormOutput struct {
	BEEKcal        float64 `json:"bee_kcal"`
	BEEKj          float64 `json:"bee_kj"`
	TDEEKcal       float64 `json:"tdee_kcal"`
	TDEEKj         float64 `json:"tdee_kj"`
	ActivityFactor float64 `json:"activity_factor"`
}
