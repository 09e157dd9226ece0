package emergency

import (
	"html/template"

	"HealthCompanion/internal/database"
)

// Card is the view model of the public emergency page.
type Card struct {
	Name        string
	Age         int32
	Sex         string
	BloodType   string
	Conditions  []string
	Allergies   []string
	Contacts    []CardContact
	Medications []CardMedication
}

type CardContact struct {
	Name         string
	Relationship string
	Phone        string
	Email        string
	Primary      bool
}

type CardMedication struct {
	Name   string
	Dosage string
}

func newCard(u database.User, contacts []database.EmergencyContact, meds []database.Medication) Card {
	card := Card{
		Name:       u.Name.String,
		Age:        u.Age.Int32,
		Sex:        u.Sex.String,
		BloodType:  u.BloodType.String,
		Conditions: u.Conditions,
		Allergies:  u.Allergies,
	}
	if card.Name == "" {
		card.Name = "Not provided"
	}
	if card.BloodType == "" {
		card.BloodType = "Unknown"
	}
	for _, ct := range contacts {
		card.Contacts = append(card.Contacts, CardContact{
			Name:         ct.Name,
			Relationship: ct.Relationship,
			Phone:        ct.Phone,
			Email:        ct.Email.String,
			Primary:      ct.IsPrimary,
		})
	}
	for _, m := range meds {
		card.Medications = append(card.Medications, CardMedication{Name: m.Name, Dosage: m.Dosage})
	}
	return card
}

const notFoundPage = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Emergency card not found</title></head>
<body><h1>Emergency card not found</h1><p>This link is invalid or has been revoked.</p></body></html>`

var cardTemplate = template.Must(template.New("card").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="robots" content="noindex">
<title>Emergency Medical ID</title>
<style>
body{margin:0;padding:16px;background:#dc2626;font-family:system-ui,sans-serif;color:#111}
.box{max-width:760px;margin:0 auto 16px;background:#fff;border-radius:8px;padding:24px}
.banner{text-align:center;border:4px solid #b91c1c}
.banner h1{color:#dc2626;margin:0 0 8px}
.label{color:#555;font-size:14px;margin:12px 0 2px}
.blood{color:#dc2626;font-size:28px;font-weight:bold}
.contact{background:#f3f4f6;border-radius:8px;padding:12px;margin:8px 0}
.contact.primary{background:#dbeafe;border:2px solid #60a5fa}
.phone{color:#2563eb;font-size:20px;font-weight:bold}
.allergy{background:#dc2626;color:#fff;font-weight:bold;padding:8px 12px;border-radius:6px;margin:6px 0}
.tag{background:#2563eb;color:#fff;font-size:11px;padding:2px 6px;border-radius:4px;margin-left:6px}
</style>
</head>
<body>
<div class="box banner">
<h1>EMERGENCY MEDICAL ID</h1>
<p>This information is for emergency responders only</p>
</div>

<div class="box">
<h2>Patient Information</h2>
<p class="label">Name</p><p><strong>{{.Name}}</strong></p>
{{if .Age}}<p class="label">Age</p><p>{{.Age}} years old</p>{{end}}
{{if .Sex}}<p class="label">Sex</p><p>{{.Sex}}</p>{{end}}
<p class="label">Blood Type</p><p class="blood">{{.BloodType}}</p>
</div>

<div class="box">
<h2>Emergency Contacts</h2>
{{range .Contacts}}
<div class="contact{{if .Primary}} primary{{end}}">
<strong>{{.Name}}</strong>{{if .Primary}}<span class="tag">PRIMARY</span>{{end}}
<div>{{.Relationship}}</div>
<div class="phone"><a href="tel:{{.Phone}}">{{.Phone}}</a></div>
{{if .Email}}<div>{{.Email}}</div>{{end}}
</div>
{{else}}
<p>No emergency contacts listed</p>
{{end}}
</div>

<div class="box">
<h2>Allergies</h2>
{{range .Allergies}}<div class="allergy">{{.}}</div>{{else}}<p>No known allergies</p>{{end}}
</div>

<div class="box">
<h2>Medical Conditions</h2>
{{range .Conditions}}<p>{{.}}</p>{{else}}<p>No conditions listed</p>{{end}}
</div>

<div class="box">
<h2>Current Medications</h2>
{{range .Medications}}<p><strong>{{.Name}}</strong> {{.Dosage}}</p>{{else}}<p>No current medications</p>{{end}}
</div>
</body>
</html>
`))
