package calendar

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names holds the localized labels used by the pickers.
type Names struct {
	Months        [12]string
	WeekdaysShort [7]string // Sunday first
	WeekdaysLong  [7]string // Sunday first
	Meridiem      [2]string // AM, PM
}

var supported = []language.Tag{
	language.English, // fallback
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Portuguese,
	language.Dutch,
}

var matcher = language.NewMatcher(supported)

var tables = []Names{
	{
		Months:        [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		WeekdaysLong:  [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		Meridiem:      [2]string{"AM", "PM"},
	},
	{
		Months:        [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		WeekdaysShort: [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		WeekdaysLong:  [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		Meridiem:      [2]string{"AM", "PM"},
	},
	{
		Months:        [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		WeekdaysShort: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		WeekdaysLong:  [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		Meridiem:      [2]string{"AM", "PM"},
	},
	{
		Months:        [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		WeekdaysShort: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		WeekdaysLong:  [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		Meridiem:      [2]string{"a. m.", "p. m."},
	},
	{
		Months:        [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
		WeekdaysShort: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		WeekdaysLong:  [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
		Meridiem:      [2]string{"AM", "PM"},
	},
	{
		Months:        [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		WeekdaysShort: [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
		WeekdaysLong:  [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		Meridiem:      [2]string{"AM", "PM"},
	},
	{
		Months:        [12]string{"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"},
		WeekdaysShort: [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
		WeekdaysLong:  [7]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
		Meridiem:      [2]string{"a.m.", "p.m."},
	},
}

// NamesFor returns the label table that best matches tag. Tags without a
// usable match resolve to English.
func NamesFor(tag language.Tag) *Names {
	_, i, conf := matcher.Match(tag)
	if conf == language.No || i < 0 || i >= len(tables) {
		i = 0
	}
	return &tables[i]
}

// ParseLocale parses a BCP 47 tag such as "de-DE". The empty string
// yields English.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return language.English, nil
	}
	return language.Parse(s)
}

// MonthNames returns the twelve month names for tag.
func MonthNames(tag language.Tag) []string {
	n := NamesFor(tag)
	return append([]string(nil), n.Months[:]...)
}

// MeridiemNames returns the AM and PM labels for tag.
func MeridiemNames(tag language.Tag) []string {
	n := NamesFor(tag)
	return []string{n.Meridiem[0], n.Meridiem[1]}
}

// Upper converts s to upper case using the casing rules of tag.
func Upper(tag language.Tag, s string) string {
	return cases.Upper(tag).String(s)
}
