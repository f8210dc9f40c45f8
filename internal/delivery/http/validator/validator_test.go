package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type donorForm struct {
	Name       string `validate:"required,donorname"`
	Mobile     string `validate:"required,len=10,numeric"`
	Age        string `validate:"required,donorage"`
	BloodGroup string `validate:"required,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
}

func validForm() donorForm {
	return donorForm{
		Name:       "Asha Kumari",
		Mobile:     "9876543210",
		Age:        "26",
		BloodGroup: "A+",
	}
}

func TestValidator_ValidForm(t *testing.T) {
	v := New()
	form := validForm()
	assert.NoError(t, v.Validate(&form))
}

func TestValidator_InvalidForms(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*donorForm)
	}{
		{name: "name with digits", mutate: func(f *donorForm) { f.Name = "Asha2" }},
		{name: "empty name", mutate: func(f *donorForm) { f.Name = "" }},
		{name: "short mobile", mutate: func(f *donorForm) { f.Mobile = "12345" }},
		{name: "non numeric mobile", mutate: func(f *donorForm) { f.Mobile = "98765abc10" }},
		{name: "underage", mutate: func(f *donorForm) { f.Age = "17" }},
		{name: "overage", mutate: func(f *donorForm) { f.Age = "61" }},
		{name: "non numeric age", mutate: func(f *donorForm) { f.Age = "old" }},
		{name: "unknown blood group", mutate: func(f *donorForm) { f.BloodGroup = "C+" }},
		{name: "lowercase blood group", mutate: func(f *donorForm) { f.BloodGroup = "a+" }},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			assert.Error(t, v.Validate(&form))
		})
	}
}

func TestValidator_AgeBoundaries(t *testing.T) {
	v := New()

	for _, age := range []string{"18", "60"} {
		form := validForm()
		form.Age = age
		assert.NoError(t, v.Validate(&form), "age %s should be eligible", age)
	}
}
