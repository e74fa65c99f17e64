package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/ngo-ledger/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// letterDir is the directory below the data directory where letters are stored.
const letterDir = "foreign-donation-letters"

var supported = []language.Tag{language.French, language.English}

var matcher = language.NewMatcher(supported)

// Organization describes the sender of the documents.
type Organization struct {
	Name           string
	Representative string
	Currency       string
}

// Local renders documents from text templates and stores letters as files
// in a directory.
type Local struct {
	dir          string
	organization Organization
	language     language.Tag
}

// NewLocal returns a generator storing letters below dir.
//
// lang is matched against the supported languages, French is used if nothing matches.
func NewLocal(dir string, organization Organization, lang string) (*Local, error) {
	err := os.MkdirAll(filepath.Join(dir, letterDir), 0o750)
	if err != nil {
		return nil, fmt.Errorf("could not create letter directory: %w", err)
	}

	tag, _ := language.Parse(lang)
	_, index, _ := matcher.Match(tag)
	base := supported[index]

	if organization.Currency == "" {
		organization.Currency = "TND"
	}

	log.Debug().Str("dir", dir).Str("language", base.String()).Msg("Documents")

	return &Local{
		dir:          dir,
		organization: organization,
		language:     base,
	}, nil
}

type templateData struct {
	Organization Organization
	Report       ReportContext
	Donor        string
}

func (l *Local) render(name string, rc ReportContext) (string, error) {
	tmpl, ok := templates[l.language][name]
	if !ok {
		return "", fmt.Errorf("no template '%s' for language %s", name, l.language)
	}

	donor := rc.DonorName
	if rc.DonorAnonymous || donor == "" {
		donor = anonymous[l.language]
	}

	var b bytes.Buffer
	err := tmpl.Execute(&b, templateData{Organization: l.organization, Report: rc, Donor: donor})
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

// GenerateLetter renders the letter and writes it to disk. The handle is
// only returned after the file has been synced and renamed into place.
func (l *Local) GenerateLetter(ctx context.Context, rc ReportContext) (string, error) {
	text, err := l.render("letter", rc)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	handle := filepath.ToSlash(filepath.Join(letterDir, rc.ReportID.String()+".txt"))
	target := filepath.Join(l.dir, filepath.FromSlash(handle))

	tmp, err := os.CreateTemp(filepath.Dir(target), ".letter-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return "", err
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", err
	}

	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", err
	}

	// Persist the rename
	dir, err := os.Open(filepath.Dir(target))
	if err != nil {
		return "", err
	}
	defer dir.Close()

	if err := dir.Sync(); err != nil {
		return "", err
	}

	return handle, nil
}

// GenerateJournalText renders the text for the journal publication.
func (l *Local) GenerateJournalText(ctx context.Context, rc ReportContext) (string, error) {
	text, err := l.render("journal", rc)
	if err != nil {
		return "", err
	}

	return text, ctx.Err()
}

// Open opens a letter stored by GenerateLetter.
func (l *Local) Open(handle string) (io.ReadCloser, error) {
	clean := filepath.ToSlash(filepath.Clean(handle))
	if clean != handle || !strings.HasPrefix(clean, letterDir+"/") {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, handle)
	}

	return os.Open(filepath.Join(l.dir, filepath.FromSlash(clean)))
}

// amount formats a decimal rounded to two places. Only the integer part is
// grouped by the printer, the cents are taken from the decimal's digits.
func amount(p *message.Printer, separator string, d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole, cents, _ := strings.Cut(fixed, ".")
	integer, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return sign + fixed
	}

	return sign + p.Sprint(number.Decimal(integer)) + separator + cents
}

var decimalSeparators = map[language.Tag]string{
	language.French:  ",",
	language.English: ".",
}

var dateLayouts = map[language.Tag]string{
	language.French:  "02/01/2006",
	language.English: "January 2, 2006",
}

var anonymous = map[language.Tag]string{
	language.French:  "Donateur anonyme",
	language.English: "Anonymous donor",
}

var templates = map[language.Tag]map[string]*template.Template{}

func init() {
	sources := map[language.Tag]map[string]string{
		language.French: {
			"letter":  letterFR,
			"journal": journalFR,
		},
		language.English: {
			"letter":  letterEN,
			"journal": journalEN,
		},
	}

	for tag, byName := range sources {
		p := message.NewPrinter(tag)
		layout := dateLayouts[tag]
		separator := decimalSeparators[tag]
		funcs := template.FuncMap{
			"amount": func(d decimal.Decimal) string { return amount(p, separator, d) },
			"date":   func(d types.Date) string { return d.Time().Format(layout) },
		}

		templates[tag] = map[string]*template.Template{}
		for name, source := range byName {
			templates[tag][name] = template.Must(template.New(name).Funcs(funcs).Parse(source))
		}
	}
}

const letterFR = `{{ .Organization.Name }}

À l'attention de Monsieur le Premier Ministre
Gouvernement de la République Tunisienne
Place du Gouvernement - La Kasbah
1020 Tunis

Objet : Déclaration de don d'origine étrangère

Monsieur le Premier Ministre,

Conformément aux dispositions légales régissant les associations, nous avons l'honneur de vous informer que notre association a reçu un don d'origine étrangère selon les détails suivants :

Donateur :             {{ .Donor }}
{{- if and .Report.DonorAddress (not .Report.DonorAnonymous) }}
Adresse :              {{ .Report.DonorAddress }}
{{- end }}
Montant reçu :         {{ amount .Report.Amount }} {{ .Organization.Currency }}
Date de réception :    {{ date .Report.TransactionDate }}
Numéro de référence :  {{ with .Report.ReferenceNumber }}{{ . }}{{ else }}Non spécifié{{ end }}
Description :          {{ .Report.Description }}
{{- with .Report.ProjectName }}
Projet :               {{ . }}
{{- end }}

Nous vous prions d'agréer, Monsieur le Premier Ministre, l'expression de notre haute considération.

Pour {{ .Organization.Name }}
{{ .Organization.Representative }}
`

const journalFR = `AVIS DE DON D'ORIGINE ÉTRANGÈRE

Conformément aux dispositions du décret-loi n° 2011-88 du 24 septembre 2011, portant organisation des associations, {{ .Organization.Name }} déclare avoir reçu un don d'origine étrangère de {{ amount .Report.Amount }} {{ .Organization.Currency }} en date du {{ date .Report.TransactionDate }}.

Le don, versé par {{ .Donor }}, a été déclaré au Premier Ministre conformément à la loi. Les fonds seront utilisés dans le cadre des activités de l'association conformément aux objectifs énoncés dans ses statuts.

Pour {{ .Organization.Name }}
{{ .Organization.Representative }}
`

const letterEN = `{{ .Organization.Name }}

To the Prime Minister
Government of the Republic of Tunisia
Place du Gouvernement - La Kasbah
1020 Tunis

Subject: Declaration of a donation of foreign origin

Dear Prime Minister,

In accordance with the legal provisions governing associations, we inform you that our association has received a donation of foreign origin:

Donor:             {{ .Donor }}
{{- if and .Report.DonorAddress (not .Report.DonorAnonymous) }}
Address:           {{ .Report.DonorAddress }}
{{- end }}
Amount received:   {{ amount .Report.Amount }} {{ .Organization.Currency }}
Date of receipt:   {{ date .Report.TransactionDate }}
Reference number:  {{ with .Report.ReferenceNumber }}{{ . }}{{ else }}Not specified{{ end }}
Description:       {{ .Report.Description }}
{{- with .Report.ProjectName }}
Project:           {{ . }}
{{- end }}

Yours faithfully,

For {{ .Organization.Name }}
{{ .Organization.Representative }}
`

const journalEN = `NOTICE OF A DONATION OF FOREIGN ORIGIN

In accordance with Decree-Law No. 2011-88 of 24 September 2011 on the organization of associations, {{ .Organization.Name }} declares that it received a donation of foreign origin of {{ amount .Report.Amount }} {{ .Organization.Currency }} on {{ date .Report.TransactionDate }}.

The donation, made by {{ .Donor }}, has been declared to the Prime Minister as required by law. The funds will be used for the activities of the association in accordance with the objectives set out in its statutes.

For {{ .Organization.Name }}
{{ .Organization.Representative }}
`
