package fib

// Index names one fc/lcb pair of FibRgFcLcb. Pairs added by a later version
// follow those of every earlier version, so an Index is valid for a FIB
// whose version holds more than Index pairs.
type Index int

const (
	// FibRgFcLcb97
	IdxStshfOrig Index = iota
	IdxStshf
	IdxPlcffndRef
	IdxPlcffndTxt
	IdxPlcfandRef
	IdxPlcfandTxt
	IdxPlcfSed
	IdxPlcPad
	IdxPlcfPhe
	IdxSttbfGlsy
	IdxPlcfGlsy
	IdxPlcfHdd
	IdxPlcfBteChpx
	IdxPlcfBtePapx
	IdxPlcfSea
	IdxSttbfFfn
	IdxPlcfFldMom
	IdxPlcfFldHdr
	IdxPlcfFldFtn
	IdxPlcfFldAtn
	IdxPlcfFldMcr
	IdxSttbfBkmk
	IdxPlcfBkf
	IdxPlcfBkl
	IdxCmds
	IdxUnused1
	IdxSttbfMcr
	IdxPrDrvr
	IdxPrEnvPort
	IdxPrEnvLand
	IdxWss
	IdxDop
	IdxSttbfAssoc
	IdxClx
	IdxPlcfPgdFtn
	IdxAutosaveSource
	IdxGrpXstAtnOwners
	IdxSttbfAtnBkmk
	IdxUnused2
	IdxUnused3
	IdxPlcSpaMom
	IdxPlcSpaHdr
	IdxPlcfAtnBkf
	IdxPlcfAtnBkl
	IdxPms
	IdxFormFldSttbs
	IdxPlcfendRef
	IdxPlcfendTxt
	IdxPlcfFldEdn
	IdxUnused4
	IdxDggInfo
	IdxSttbfRMark
	IdxSttbCaption
	IdxSttbAutoCaption
	IdxPlcfWkb
	IdxPlcfSpl
	IdxPlcftxbxTxt
	IdxPlcfFldTxbx
	IdxPlcfHdrtxbxTxt
	IdxPlcffldHdrTxbx
	IdxStwUser
	IdxSttbTtmbd
	IdxCookieData
	IdxPgdMotherOldOld
	IdxBkdMotherOldOld
	IdxPgdFtnOldOld
	IdxBkdFtnOldOld
	IdxPgdEdnOldOld
	IdxBkdEdnOldOld
	IdxSttbfIntlFld
	IdxRouteSlip
	IdxSttbSavedBy
	IdxSttbFnm
	IdxPlfLst
	IdxPlfLfo
	IdxPlcfTxbxBkd
	IdxPlcfTxbxHdrBkd
	IdxDocUndoWord9
	IdxRgbUse
	IdxUsp
	IdxUskf
	IdxPlcupcRgbUse
	IdxPlcupcUsp
	IdxSttbGlsyStyle
	IdxPlgosl
	IdxPlcocx
	IdxPlcfBteLvc
	IdxLastSaved
	IdxPlcfLvcPre10
	IdxPlcfAsumy
	IdxPlcfGram
	IdxSttbListNames
	IdxSttbfUssr

	// FibRgFcLcb2000
	IdxPlcfTch
	IdxRmdThreading
	IdxMid
	IdxSttbRgtplc
	IdxMsoEnvelope
	IdxPlcfLad
	IdxRgDofr
	IdxPlcosl
	IdxPlcfCookieOld
	IdxPgdMotherOld
	IdxBkdMotherOld
	IdxPgdFtnOld
	IdxBkdFtnOld
	IdxPgdEdnOld
	IdxBkdEdnOld

	// FibRgFcLcb2002
	IdxUnused1V2002
	IdxPlcfPgp
	IdxPlcfuim
	IdxPlfguidUim
	IdxAtrdExtra
	IdxPlrsid
	IdxSttbfBkmkFactoid
	IdxPlcfBkfFactoid
	IdxPlcfcookie
	IdxPlcfBklFactoid
	IdxFactoidData
	IdxDocUndo
	IdxSttbfBkmkFcc
	IdxPlcfBkfFcc
	IdxPlcfBklFcc
	IdxSttbfbkmkBPRepairs
	IdxPlcfbkfBPRepairs
	IdxPlcfbklBPRepairs
	IdxPmsNew
	IdxODSO
	IdxPlcfpmiOldXP
	IdxPlcfpmiNewXP
	IdxPlcfpmiMixedXP
	IdxUnused2V2002
	IdxPlcffactoid
	IdxPlcflvcOldXP
	IdxPlcflvcNewXP
	IdxPlcflvcMixedXP

	// FibRgFcLcb2003
	IdxHplxsdr
	IdxSttbfBkmkSdt
	IdxPlcfBkfSdt
	IdxPlcfBklSdt
	IdxCustomXForm
	IdxSttbfBkmkProt
	IdxPlcfBkfProt
	IdxPlcfBklProt
	IdxSttbProtUser
	IdxUnusedV2003
	IdxPlcfpmiOld
	IdxPlcfpmiOldInline
	IdxPlcfpmiNew
	IdxPlcfpmiNewInline
	IdxPlcflvcOld
	IdxPlcflvcOldInline
	IdxPlcflvcNew
	IdxPlcflvcNewInline
	IdxPgdMother
	IdxBkdMother
	IdxAfdMother
	IdxPgdFtn
	IdxBkdFtn
	IdxAfdFtn
	IdxPgdEdn
	IdxBkdEdn
	IdxAfdEdn
	IdxAfd

	// FibRgFcLcb2007
	IdxPlcfmthd
	IdxSttbfBkmkMoveFrom
	IdxPlcfBkfMoveFrom
	IdxPlcfBklMoveFrom
	IdxSttbfBkmkMoveTo
	IdxPlcfBkfMoveTo
	IdxPlcfBklMoveTo
	IdxUnused1V2007
	IdxUnused2V2007
	IdxUnused3V2007
	IdxSttbfBkmkArto
	IdxPlcfBkfArto
	IdxPlcfBklArto
	IdxArtoData
	IdxUnused4V2007
	IdxUnused5V2007
	IdxUnused6V2007
	IdxOssTheme
	IdxColorSchemeMapping
)

var indexNames = [...]string{
	IdxStshfOrig:          "fcStshfOrig",
	IdxStshf:              "fcStshf",
	IdxPlcffndRef:         "fcPlcffndRef",
	IdxPlcffndTxt:         "fcPlcffndTxt",
	IdxPlcfandRef:         "fcPlcfandRef",
	IdxPlcfandTxt:         "fcPlcfandTxt",
	IdxPlcfSed:            "fcPlcfSed",
	IdxPlcPad:             "fcPlcPad",
	IdxPlcfPhe:            "fcPlcfPhe",
	IdxSttbfGlsy:          "fcSttbfGlsy",
	IdxPlcfGlsy:           "fcPlcfGlsy",
	IdxPlcfHdd:            "fcPlcfHdd",
	IdxPlcfBteChpx:        "fcPlcfBteChpx",
	IdxPlcfBtePapx:        "fcPlcfBtePapx",
	IdxPlcfSea:            "fcPlcfSea",
	IdxSttbfFfn:           "fcSttbfFfn",
	IdxPlcfFldMom:         "fcPlcfFldMom",
	IdxPlcfFldHdr:         "fcPlcfFldHdr",
	IdxPlcfFldFtn:         "fcPlcfFldFtn",
	IdxPlcfFldAtn:         "fcPlcfFldAtn",
	IdxPlcfFldMcr:         "fcPlcfFldMcr",
	IdxSttbfBkmk:          "fcSttbfBkmk",
	IdxPlcfBkf:            "fcPlcfBkf",
	IdxPlcfBkl:            "fcPlcfBkl",
	IdxCmds:               "fcCmds",
	IdxUnused1:            "fcUnused1",
	IdxSttbfMcr:           "fcSttbfMcr",
	IdxPrDrvr:             "fcPrDrvr",
	IdxPrEnvPort:          "fcPrEnvPort",
	IdxPrEnvLand:          "fcPrEnvLand",
	IdxWss:                "fcWss",
	IdxDop:                "fcDop",
	IdxSttbfAssoc:         "fcSttbfAssoc",
	IdxClx:                "fcClx",
	IdxPlcfPgdFtn:         "fcPlcfPgdFtn",
	IdxAutosaveSource:     "fcAutosaveSource",
	IdxGrpXstAtnOwners:    "fcGrpXstAtnOwners",
	IdxSttbfAtnBkmk:       "fcSttbfAtnBkmk",
	IdxUnused2:            "fcUnused2",
	IdxUnused3:            "fcUnused3",
	IdxPlcSpaMom:          "fcPlcSpaMom",
	IdxPlcSpaHdr:          "fcPlcSpaHdr",
	IdxPlcfAtnBkf:         "fcPlcfAtnBkf",
	IdxPlcfAtnBkl:         "fcPlcfAtnBkl",
	IdxPms:                "fcPms",
	IdxFormFldSttbs:       "fcFormFldSttbs",
	IdxPlcfendRef:         "fcPlcfendRef",
	IdxPlcfendTxt:         "fcPlcfendTxt",
	IdxPlcfFldEdn:         "fcPlcfFldEdn",
	IdxUnused4:            "fcUnused4",
	IdxDggInfo:            "fcDggInfo",
	IdxSttbfRMark:         "fcSttbfRMark",
	IdxSttbCaption:        "fcSttbCaption",
	IdxSttbAutoCaption:    "fcSttbAutoCaption",
	IdxPlcfWkb:            "fcPlcfWkb",
	IdxPlcfSpl:            "fcPlcfSpl",
	IdxPlcftxbxTxt:        "fcPlcftxbxTxt",
	IdxPlcfFldTxbx:        "fcPlcfFldTxbx",
	IdxPlcfHdrtxbxTxt:     "fcPlcfHdrtxbxTxt",
	IdxPlcffldHdrTxbx:     "fcPlcffldHdrTxbx",
	IdxStwUser:            "fcStwUser",
	IdxSttbTtmbd:          "fcSttbTtmbd",
	IdxCookieData:         "fcCookieData",
	IdxPgdMotherOldOld:    "fcPgdMotherOldOld",
	IdxBkdMotherOldOld:    "fcBkdMotherOldOld",
	IdxPgdFtnOldOld:       "fcPgdFtnOldOld",
	IdxBkdFtnOldOld:       "fcBkdFtnOldOld",
	IdxPgdEdnOldOld:       "fcPgdEdnOldOld",
	IdxBkdEdnOldOld:       "fcBkdEdnOldOld",
	IdxSttbfIntlFld:       "fcSttbfIntlFld",
	IdxRouteSlip:          "fcRouteSlip",
	IdxSttbSavedBy:        "fcSttbSavedBy",
	IdxSttbFnm:            "fcSttbFnm",
	IdxPlfLst:             "fcPlfLst",
	IdxPlfLfo:             "fcPlfLfo",
	IdxPlcfTxbxBkd:        "fcPlcfTxbxBkd",
	IdxPlcfTxbxHdrBkd:     "fcPlcfTxbxHdrBkd",
	IdxDocUndoWord9:       "fcDocUndoWord9",
	IdxRgbUse:             "fcRgbUse",
	IdxUsp:                "fcUsp",
	IdxUskf:               "fcUskf",
	IdxPlcupcRgbUse:       "fcPlcupcRgbUse",
	IdxPlcupcUsp:          "fcPlcupcUsp",
	IdxSttbGlsyStyle:      "fcSttbGlsyStyle",
	IdxPlgosl:             "fcPlgosl",
	IdxPlcocx:             "fcPlcocx",
	IdxPlcfBteLvc:         "fcPlcfBteLvc",
	IdxLastSaved:          "dwLowDateTime/dwHighDateTime",
	IdxPlcfLvcPre10:       "fcPlcfLvcPre10",
	IdxPlcfAsumy:          "fcPlcfAsumy",
	IdxPlcfGram:           "fcPlcfGram",
	IdxSttbListNames:      "fcSttbListNames",
	IdxSttbfUssr:          "fcSttbfUssr",
	IdxPlcfTch:            "fcPlcfTch",
	IdxRmdThreading:       "fcRmdThreading",
	IdxMid:                "fcMid",
	IdxSttbRgtplc:         "fcSttbRgtplc",
	IdxMsoEnvelope:        "fcMsoEnvelope",
	IdxPlcfLad:            "fcPlcfLad",
	IdxRgDofr:             "fcRgDofr",
	IdxPlcosl:             "fcPlcosl",
	IdxPlcfCookieOld:      "fcPlcfCookieOld",
	IdxPgdMotherOld:       "fcPgdMotherOld",
	IdxBkdMotherOld:       "fcBkdMotherOld",
	IdxPgdFtnOld:          "fcPgdFtnOld",
	IdxBkdFtnOld:          "fcBkdFtnOld",
	IdxPgdEdnOld:          "fcPgdEdnOld",
	IdxBkdEdnOld:          "fcBkdEdnOld",
	IdxUnused1V2002:       "fcUnused1",
	IdxPlcfPgp:            "fcPlcfPgp",
	IdxPlcfuim:            "fcPlcfuim",
	IdxPlfguidUim:         "fcPlfguidUim",
	IdxAtrdExtra:          "fcAtrdExtra",
	IdxPlrsid:             "fcPlrsid",
	IdxSttbfBkmkFactoid:   "fcSttbfBkmkFactoid",
	IdxPlcfBkfFactoid:     "fcPlcfBkfFactoid",
	IdxPlcfcookie:         "fcPlcfcookie",
	IdxPlcfBklFactoid:     "fcPlcfBklFactoid",
	IdxFactoidData:        "fcFactoidData",
	IdxDocUndo:            "fcDocUndo",
	IdxSttbfBkmkFcc:       "fcSttbfBkmkFcc",
	IdxPlcfBkfFcc:         "fcPlcfBkfFcc",
	IdxPlcfBklFcc:         "fcPlcfBklFcc",
	IdxSttbfbkmkBPRepairs: "fcSttbfbkmkBPRepairs",
	IdxPlcfbkfBPRepairs:   "fcPlcfbkfBPRepairs",
	IdxPlcfbklBPRepairs:   "fcPlcfbklBPRepairs",
	IdxPmsNew:             "fcPmsNew",
	IdxODSO:               "fcODSO",
	IdxPlcfpmiOldXP:       "fcPlcfpmiOldXP",
	IdxPlcfpmiNewXP:       "fcPlcfpmiNewXP",
	IdxPlcfpmiMixedXP:     "fcPlcfpmiMixedXP",
	IdxUnused2V2002:       "fcUnused2",
	IdxPlcffactoid:        "fcPlcffactoid",
	IdxPlcflvcOldXP:       "fcPlcflvcOldXP",
	IdxPlcflvcNewXP:       "fcPlcflvcNewXP",
	IdxPlcflvcMixedXP:     "fcPlcflvcMixedXP",
	IdxHplxsdr:            "fcHplxsdr",
	IdxSttbfBkmkSdt:       "fcSttbfBkmkSdt",
	IdxPlcfBkfSdt:         "fcPlcfBkfSdt",
	IdxPlcfBklSdt:         "fcPlcfBklSdt",
	IdxCustomXForm:        "fcCustomXForm",
	IdxSttbfBkmkProt:      "fcSttbfBkmkProt",
	IdxPlcfBkfProt:        "fcPlcfBkfProt",
	IdxPlcfBklProt:        "fcPlcfBklProt",
	IdxSttbProtUser:       "fcSttbProtUser",
	IdxUnusedV2003:        "fcUnused",
	IdxPlcfpmiOld:         "fcPlcfpmiOld",
	IdxPlcfpmiOldInline:   "fcPlcfpmiOldInline",
	IdxPlcfpmiNew:         "fcPlcfpmiNew",
	IdxPlcfpmiNewInline:   "fcPlcfpmiNewInline",
	IdxPlcflvcOld:         "fcPlcflvcOld",
	IdxPlcflvcOldInline:   "fcPlcflvcOldInline",
	IdxPlcflvcNew:         "fcPlcflvcNew",
	IdxPlcflvcNewInline:   "fcPlcflvcNewInline",
	IdxPgdMother:          "fcPgdMother",
	IdxBkdMother:          "fcBkdMother",
	IdxAfdMother:          "fcAfdMother",
	IdxPgdFtn:             "fcPgdFtn",
	IdxBkdFtn:             "fcBkdFtn",
	IdxAfdFtn:             "fcAfdFtn",
	IdxPgdEdn:             "fcPgdEdn",
	IdxBkdEdn:             "fcBkdEdn",
	IdxAfdEdn:             "fcAfdEdn",
	IdxAfd:                "fcAfd",
	IdxPlcfmthd:           "fcPlcfmthd",
	IdxSttbfBkmkMoveFrom:  "fcSttbfBkmkMoveFrom",
	IdxPlcfBkfMoveFrom:    "fcPlcfBkfMoveFrom",
	IdxPlcfBklMoveFrom:    "fcPlcfBklMoveFrom",
	IdxSttbfBkmkMoveTo:    "fcSttbfBkmkMoveTo",
	IdxPlcfBkfMoveTo:      "fcPlcfBkfMoveTo",
	IdxPlcfBklMoveTo:      "fcPlcfBklMoveTo",
	IdxUnused1V2007:       "fcUnused1",
	IdxUnused2V2007:       "fcUnused2",
	IdxUnused3V2007:       "fcUnused3",
	IdxSttbfBkmkArto:      "fcSttbfBkmkArto",
	IdxPlcfBkfArto:        "fcPlcfBkfArto",
	IdxPlcfBklArto:        "fcPlcfBklArto",
	IdxArtoData:           "fcArtoData",
	IdxUnused4V2007:       "fcUnused4",
	IdxUnused5V2007:       "fcUnused5",
	IdxUnused6V2007:       "fcUnused6",
	IdxOssTheme:           "fcOssTheme",
	IdxColorSchemeMapping: "fcColorSchemeMapping",
}

// String returns the field name of the fc half of the pair.
func (i Index) String() string {
	if i >= 0 && int(i) < len(indexNames) {
		return indexNames[i]
	}
	return "unknown"
}
