package converter

import (
	charsetruntime "github.com/wippyai/charset-runtime"
)

type Outcome = charsetruntime.Outcome

const (
	OutcomeOK              = charsetruntime.OutcomeOK
	OutcomeUnmappableInput = charsetruntime.OutcomeUnmappableInput
	OutcomeMalformedInput  = charsetruntime.OutcomeMalformedInput
	OutcomeBufferOverflow  = charsetruntime.OutcomeBufferOverflow
	OutcomeIllegalArgument = charsetruntime.OutcomeIllegalArgument
)

type Policy = charsetruntime.Policy

const (
	PolicyReport  = charsetruntime.PolicyReport
	PolicyIgnore  = charsetruntime.PolicyIgnore
	PolicyReplace = charsetruntime.PolicyReplace
)

type Cursor = charsetruntime.Cursor

const (
	MaxSubstitutionBytes = charsetruntime.MaxSubstitutionBytes
	MaxSubstitutionChars = charsetruntime.MaxSubstitutionChars
)
