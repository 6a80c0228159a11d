package tbcloud

import (
	"bytes"
	"strconv"
)

// Results is the output of several profiles written as one table.
type Results []*Result

// ToCSV writes rs as one table with a header line.
func (rs Results) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("profile")
	buf.WriteString(",model")
	buf.WriteString(",angle")
	buf.WriteString(",freq")
	buf.WriteString(",tb")
	buf.WriteString(",tb_atm")
	buf.WriteString(",tmr")
	buf.WriteString(",tmr_cld")
	buf.WriteString(",tau_wet")
	buf.WriteString(",tau_dry")
	buf.WriteString(",tau_liq")
	buf.WriteString(",tau_ice")
	buf.WriteString(",lwp")
	buf.WriteString(",levels")
	buf.WriteString(",truncated")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for _, r := range rs {
		for i := range r.Channels {
			ch := &r.Channels[i]
			buf.WriteString(r.Profile)
			buf.WriteString(",")
			buf.WriteString(r.Model.String())
			writeFloat(r.Angle)
			writeFloat(ch.Frequency)
			writeFloat(ch.TbTotal)
			writeFloat(ch.TbAtm)
			writeFloat(ch.Tmr)
			writeFloat(ch.TmrCld)
			writeFloat(ch.TauWet)
			writeFloat(ch.TauDry)
			writeFloat(ch.TauLiq)
			writeFloat(ch.TauIce)
			writeFloat(r.LiquidPath)
			buf.WriteString(",")
			buf.WriteString(strconv.Itoa(r.Levels))
			buf.WriteString(",")
			buf.WriteString(strconv.FormatBool(r.Truncated))
			buf.WriteString("\n")
		}
	}
}

// ToCSV writes r as a table with a header line.
func (r *Result) ToCSV(buf *bytes.Buffer) {
	Results{r}.ToCSV(buf)
}
