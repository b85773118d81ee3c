package jcl

const (
	defaultAccount  = "ACCT"
	defaultClass    = "A"
	defaultMsgClass = "X"
	defaultCondCode = 4
)

// DefaultTemplate is the stock compile, link and go document.
//
// Compile and link-edit come from the IGYWCL cataloged procedure, so the
// link step only runs if the compile is clean. The run step carries a COND
// so it is skipped when anything earlier ends above CondCode.
const DefaultTemplate = `//{{.JobName}} JOB ({{.Account}}),'COMPILE RUN',CLASS={{.Class}},
//             MSGCLASS={{.MsgClass}},MSGLEVEL=(1,1),NOTIFY=&SYSUID
//*
//COBRUN  EXEC IGYWCL{{.CompileParm}}
//COBOL.SYSIN  DD DSN={{.SourceDataset}}({{.Member}}),DISP=SHR
//LKED.SYSLMOD DD DSN={{.LoadDataset}}({{.ProgramID}}),DISP=SHR
//*
//RUN     EXEC PGM={{.ProgramID}},COND=({{.CondCode}},LT){{.RunParm}}
//STEPLIB  DD DSN={{.LoadDataset}},DISP=SHR
//SYSOUT   DD SYSOUT=*
//CEEDUMP  DD DUMMY
//SYSUDUMP DD DUMMY
`
