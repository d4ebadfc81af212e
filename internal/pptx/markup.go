package pptx

import "encoding/xml"

// Namespaces and relationship types used by the package parts.
const (
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP   = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRel = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCT  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsApp = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsCP  = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"

	relOfficeDocument = nsR + "/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relAppProps       = nsR + "/extended-properties"
	relSlideMaster    = nsR + "/slideMaster"
	relSlideLayout    = nsR + "/slideLayout"
	relSlide          = nsR + "/slide"
	relTheme          = nsR + "/theme"
	relPresProps      = nsR + "/presProps"
	relViewProps      = nsR + "/viewProps"
	relTableStyles    = nsR + "/tableStyles"
)

// Prefixed element names are written literally; encoding/xml only treats a
// space as a namespace separator.

type empty struct{}

type xSlide struct {
	XMLName   xml.Name   `xml:"p:sld"`
	XmlnsA    string     `xml:"xmlns:a,attr"`
	XmlnsR    string     `xml:"xmlns:r,attr"`
	XmlnsP    string     `xml:"xmlns:p,attr"`
	CSld      xCSld      `xml:"p:cSld"`
	ClrMapOvr xClrMapOvr `xml:"p:clrMapOvr"`
}

type xClrMapOvr struct {
	MasterClrMapping empty `xml:"a:masterClrMapping"`
}

type xCSld struct {
	SpTree xSpTree `xml:"p:spTree"`
}

type xSpTree struct {
	NvGrpSpPr xNvGrpSpPr `xml:"p:nvGrpSpPr"`
	GrpSpPr   xGrpSpPr   `xml:"p:grpSpPr"`
	Shapes    []xSp      `xml:"p:sp"`
}

type xNvGrpSpPr struct {
	CNvPr      xCNvPr `xml:"p:cNvPr"`
	CNvGrpSpPr empty  `xml:"p:cNvGrpSpPr"`
	NvPr       empty  `xml:"p:nvPr"`
}

type xGrpSpPr struct {
	Xfrm xGrpXfrm `xml:"a:xfrm"`
}

type xGrpXfrm struct {
	Off   xPoint `xml:"a:off"`
	Ext   xSize  `xml:"a:ext"`
	ChOff xPoint `xml:"a:chOff"`
	ChExt xSize  `xml:"a:chExt"`
}

type xCNvPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type xPoint struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type xSize struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type xSp struct {
	NvSpPr xNvSpPr  `xml:"p:nvSpPr"`
	SpPr   xSpPr    `xml:"p:spPr"`
	TxBody *xTxBody `xml:"p:txBody"`
}

type xNvSpPr struct {
	CNvPr   xCNvPr   `xml:"p:cNvPr"`
	CNvSpPr xCNvSpPr `xml:"p:cNvSpPr"`
	NvPr    empty    `xml:"p:nvPr"`
}

type xCNvSpPr struct {
	TxBox string `xml:"txBox,attr,omitempty"`
}

type xSpPr struct {
	Xfrm      xXfrm       `xml:"a:xfrm"`
	PrstGeom  xPrstGeom   `xml:"a:prstGeom"`
	SolidFill *xSolidFill `xml:"a:solidFill"`
	NoFill    *empty      `xml:"a:noFill"`
	Ln        *xLn        `xml:"a:ln"`
}

type xXfrm struct {
	Off xPoint `xml:"a:off"`
	Ext xSize  `xml:"a:ext"`
}

type xPrstGeom struct {
	Prst  string `xml:"prst,attr"`
	AvLst empty  `xml:"a:avLst"`
}

type xLn struct {
	NoFill empty `xml:"a:noFill"`
}

type xSolidFill struct {
	SrgbClr xSrgbClr `xml:"a:srgbClr"`
}

type xSrgbClr struct {
	Val string `xml:"val,attr"`
}

type xTxBody struct {
	BodyPr     xBodyPr `xml:"a:bodyPr"`
	LstStyle   empty   `xml:"a:lstStyle"`
	Paragraphs []xP    `xml:"a:p"`
}

type xBodyPr struct {
	Wrap      string `xml:"wrap,attr"`
	RtlCol    string `xml:"rtlCol,attr"`
	SpAutoFit *empty `xml:"a:spAutoFit"`
}

type xP struct {
	PPr  *xPPr `xml:"a:pPr"`
	Runs []xR  `xml:"a:r"`
}

type xPPr struct {
	Algn   string   `xml:"algn,attr,omitempty"`
	SpcAft *xSpcAft `xml:"a:spcAft"`
}

type xSpcAft struct {
	SpcPts xVal `xml:"a:spcPts"`
}

type xVal struct {
	Val int `xml:"val,attr"`
}

type xR struct {
	RPr xRPr   `xml:"a:rPr"`
	T   string `xml:"a:t"`
}

type xRPr struct {
	Lang      string      `xml:"lang,attr,omitempty"`
	Sz        int         `xml:"sz,attr,omitempty"`
	B         string      `xml:"b,attr,omitempty"`
	Dirty     string      `xml:"dirty,attr"`
	SolidFill *xSolidFill `xml:"a:solidFill"`
}

type xPresentation struct {
	XMLName         xml.Name         `xml:"p:presentation"`
	XmlnsA          string           `xml:"xmlns:a,attr"`
	XmlnsR          string           `xml:"xmlns:r,attr"`
	XmlnsP          string           `xml:"xmlns:p,attr"`
	SaveSubsetFonts string           `xml:"saveSubsetFonts,attr"`
	SldMasterIDLst  xSldMasterIDLst  `xml:"p:sldMasterIdLst"`
	SldIDLst        *xSldIDLst       `xml:"p:sldIdLst"`
	SldSz           xSldSz           `xml:"p:sldSz"`
	NotesSz         xSize            `xml:"p:notesSz"`
	DefaultText     *xDefaultTextSty `xml:"p:defaultTextStyle"`
}

type xDefaultTextSty struct {
	DefPPr xDefPPr `xml:"a:defPPr"`
}

type xDefPPr struct {
	DefRPr xDefRPr `xml:"a:defRPr"`
}

type xDefRPr struct {
	Lang string `xml:"lang,attr"`
}

type xSldMasterIDLst struct {
	IDs []xSldID `xml:"p:sldMasterId"`
}

type xSldIDLst struct {
	IDs []xSldID `xml:"p:sldId"`
}

type xSldID struct {
	ID  int64  `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type xSldSz struct {
	CX   int64  `xml:"cx,attr"`
	CY   int64  `xml:"cy,attr"`
	Type string `xml:"type,attr,omitempty"`
}

type xRelationships struct {
	XMLName xml.Name `xml:"Relationships"`
	Xmlns   string   `xml:"xmlns,attr"`
	Rels    []xRel   `xml:"Relationship"`
}

type xRel struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xTypes struct {
	XMLName   xml.Name    `xml:"Types"`
	Xmlns     string      `xml:"xmlns,attr"`
	Defaults  []xDefault  `xml:"Default"`
	Overrides []xOverride `xml:"Override"`
}

type xDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xAppProps struct {
	XMLName            xml.Name `xml:"Properties"`
	Xmlns              string   `xml:"xmlns,attr"`
	Application        string   `xml:"Application"`
	PresentationFormat string   `xml:"PresentationFormat"`
	Slides             int      `xml:"Slides"`
}

type xCoreProps struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	XmlnsCP        string   `xml:"xmlns:cp,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string   `xml:"xmlns:dcterms,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Revision       int      `xml:"cp:revision"`
	Created        xW3CDTF  `xml:"dcterms:created"`
	Modified       xW3CDTF  `xml:"dcterms:modified"`
}

type xW3CDTF struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}
