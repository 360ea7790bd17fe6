package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Имена шаблонов
const (
	TemplateReferralInvite = "referral_invite"
	TemplateHireNotice     = "hire_notice"
)

// Встроенные шаблоны. Кандидат получает свой реферальный код только
// этим письмом - ни один API-ответ и ни один лог код не содержат.
var builtinTemplates = map[string]string{
	TemplateReferralInvite: `
<h2>You have been referred!</h2>
<p>{{.ReferrerEmail}} referred you for job #{{.JobID}} on FrontDoor.</p>
<p>Your referral code:</p>
<p><strong>{{.ReferralCode}}</strong></p>
<p>Sign in and confirm the referral with this code and the email address
this message was sent to. The code works exactly once.</p>
`,
	TemplateHireNotice: `
<h2>Congratulations, you are hired!</h2>
<p>The company behind job #{{.JobID}} confirmed your hire.</p>
<p>The bounty becomes claimable {{.CooldownDays}} days after the hire date.</p>
`,
}

// TemplateManager парсит и рендерит встроенные шаблоны
type TemplateManager struct {
	templates map[string]*template.Template
}

// NewTemplateManager создает менеджер со всеми встроенными шаблонами
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}

	for name, text := range builtinTemplates {
		tmpl, err := template.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = tmpl
	}

	return tm, nil
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	tmpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
