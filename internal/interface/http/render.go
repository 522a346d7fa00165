package http

import (
	"html/template"

	"github.com/yanqian/aqi-advisor/internal/domain/aqi"
)

const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Air Quality Health Advisory</title>
</head>
<body>
<h1>Air Quality Health Advisory</h1>{{end}}

{{define "form"}}{{template "head"}}
{{if .Error}}<p class="error" role="alert">{{.Error}}</p>{{end}}
<form id="aqi-form" action="/advisory" method="get">
<label>City <input id="city" name="city" value="{{.City}}"></label>
<label>AQI <input id="aqi" name="aqi" type="number" min="0" max="500" value="{{.AQI}}"></label>
<label>Time of day
<select id="time" name="timeOfDay">
<option value="">Select time of day</option>
{{range .Times}}<option value="{{.}}"{{if eq . $.TimeOfDay}} selected{{end}}>{{.}}</option>
{{end}}</select></label>
<label>Health profile
<select id="profile" name="profile">
{{range .Profiles}}<option value="{{.}}"{{if eq . $.Profile}} selected{{end}}>{{.}}</option>
{{end}}</select></label>
<label>Advisory
<select id="variant" name="variant">
<option value="local"{{if eq .Variant "local"}} selected{{end}}>local</option>
<option value="remote"{{if eq .Variant "remote"}} selected{{end}}>remote</option>
</select></label>
<button type="submit">Get Advisory</button>
</form>
</body>
</html>{{end}}

{{define "panel"}}{{template "head"}}
<section id="output-section">
<h2 id="aqi-category" class="aqi-category {{.Category}}">{{.Icon}} AQI Category: {{.Label}} (AQI: {{.AQI}})</h2>
<p class="city">{{.City}}</p>
{{if .Elevated}}<div id="warningBox" class="warning-box">Health warning: AQI is above 150. Everyone may experience health effects, limit time outdoors.</div>{{end}}
<div id="advisory-content">
<h3>Health Implications</h3>
<p>{{.HealthImplications}}</p>
{{with .RecommendedActions}}<h3>Recommended Actions</h3>
<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{with .Guidance}}<h3>General Advice</h3>
<p>{{.GeneralAdvice}}</p>
<h3>Sensitive Groups</h3>
<p>{{.SensitiveGroups}}</p>
<h3>Outdoor Activities</h3>
<p>{{.OutdoorActivities}}</p>
<h3>Protective Measures</h3>
<p>{{.ProtectiveMeasures}}</p>{{end}}
{{with .SpecialConsiderations}}<h3>Special Considerations for Sensitive Groups</h3>
<p>{{.}}</p>{{end}}
{{with .TimeOfDay}}<h3>Time of Day Considerations</h3>
<p>{{.Note}}</p>
<ul>{{range .Factors}}<li>{{.}}</li>{{end}}</ul>{{end}}
<h3>Mask Recommendation</h3>
<p>{{.MaskRecommendation}}</p>
{{with .Outlook}}<h3>Outlook</h3>
<p>{{.}}</p>{{end}}
</div>
</section>
<p><a href="/">New advisory</a></p>
</body>
</html>{{end}}

{{define "error"}}{{template "head"}}
<p class="error" role="alert">Error: {{.}}</p>
<p><a href="/">Back</a></p>
</body>
</html>{{end}}
`

// formView is the data behind the "form" template.
type formView struct {
	Error     string
	City      string
	AQI       string
	TimeOfDay string
	Profile   string
	Variant   string
	Times     []string
	Profiles  []string
}

func newFormView(req aqi.Request, defaultVariant aqi.Variant, errMsg string) formView {
	variant := req.Variant
	if variant == "" {
		variant = string(defaultVariant)
	}
	profile := req.Profile
	if profile == "" {
		profile = string(aqi.ProfileGeneral)
	}
	profiles := make([]string, 0, len(aqi.Profiles()))
	for _, p := range aqi.Profiles() {
		profiles = append(profiles, string(p))
	}
	return formView{
		Error:     errMsg,
		City:      req.City,
		AQI:       string(req.AQI),
		TimeOfDay: req.TimeOfDay,
		Profile:   profile,
		Variant:   variant,
		Times:     []string{string(aqi.Morning), string(aqi.Afternoon), string(aqi.Evening), string(aqi.Night)},
		Profiles:  profiles,
	}
}

func parseTemplates() *template.Template {
	return template.Must(template.New("pages").Parse(pageTemplates))
}
