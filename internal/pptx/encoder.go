package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/alnah/go-slidedeck/internal/assets"
)

// Sentinel errors for encoding.
var (
	ErrNilPresentation = errors.New("presentation cannot be nil")
	ErrInvalidSize     = errors.New("invalid slide size")
	ErrMarshal         = errors.New("failed to marshal part")
	ErrArchive         = errors.New("failed to write archive")
)

// Content types.
const (
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML          = "application/xml"
	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctAppProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Identifier bases mandated by PresentationML.
const (
	firstSlideID       = 256
	slideMasterID      = 2147483648
	firstShapeID       = 2
	applicationName    = "go-slidedeck"
	presentationFormat = "On-screen Show (4:3)"
)

// Encoder writes presentations as .pptx archives.
// Safe for concurrent use once created.
type Encoder struct {
	parts *assets.PartSet
}

// NewEncoder creates an Encoder with the embedded part set.
func NewEncoder() (*Encoder, error) {
	ps, err := assets.LoadDefaultPartSet()
	if err != nil {
		return nil, fmt.Errorf("loading parts: %w", err)
	}
	return &Encoder{parts: ps}, nil
}

// NewEncoderWithLoader creates an Encoder whose static parts come from l.
func NewEncoderWithLoader(l assets.PartLoader) (*Encoder, error) {
	ps, err := assets.LoadPartSet(l)
	if err != nil {
		return nil, fmt.Errorf("loading parts: %w", err)
	}
	return &Encoder{parts: ps}, nil
}

// part is one archive entry.
type part struct {
	name string
	data []byte
}

// Encode writes p to w as a complete package. Nothing is written to w when
// building a part fails.
func (e *Encoder) Encode(w io.Writer, p *Presentation) error {
	if p == nil {
		return ErrNilPresentation
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d EMU", ErrInvalidSize, p.Width, p.Height)
	}

	entries, err := e.buildParts(p)
	if err != nil {
		return err
	}

	modified := p.Created
	if modified.IsZero() {
		modified = time.Unix(0, 0).UTC()
	}

	zw := zip.NewWriter(w)
	for _, entry := range entries {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     entry.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrArchive, entry.name, err)
		}
		if _, err := fw.Write(entry.data); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrArchive, entry.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrArchive, err)
	}
	return nil
}

// EncodeBytes returns the package as a byte slice.
func (e *Encoder) EncodeBytes(p *Presentation) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Encode(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildParts renders every part in archive order, content types first.
func (e *Encoder) buildParts(p *Presentation) ([]part, error) {
	theme, err := e.parts.Theme(assets.ThemeColors(p.Theme))
	if err != nil {
		return nil, err
	}

	n := len(p.Slides)
	var entries []part
	add := func(name string, v any) error {
		data, err := marshal(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMarshal, name, err)
		}
		entries = append(entries, part{name: name, data: data})
		return nil
	}
	addRaw := func(name, content string) {
		entries = append(entries, part{name: name, data: []byte(content)})
	}

	if err := add("[Content_Types].xml", contentTypes(n)); err != nil {
		return nil, err
	}
	if err := add("_rels/.rels", rootRels()); err != nil {
		return nil, err
	}
	if err := add("docProps/app.xml", appProps(n)); err != nil {
		return nil, err
	}
	if err := add("docProps/core.xml", coreProps(p)); err != nil {
		return nil, err
	}
	if err := add("ppt/presentation.xml", presentation(p)); err != nil {
		return nil, err
	}
	if err := add("ppt/_rels/presentation.xml.rels", presentationRels(n)); err != nil {
		return nil, err
	}
	addRaw("ppt/presProps.xml", e.parts.PresProps)
	addRaw("ppt/viewProps.xml", e.parts.ViewProps)
	addRaw("ppt/tableStyles.xml", e.parts.TableStyles)
	addRaw("ppt/theme/theme1.xml", theme)
	addRaw("ppt/slideMasters/slideMaster1.xml", e.parts.SlideMaster)
	if err := add("ppt/slideMasters/_rels/slideMaster1.xml.rels", relationships(
		xRel{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		xRel{ID: "rId2", Type: relTheme, Target: "../theme/theme1.xml"},
	)); err != nil {
		return nil, err
	}
	addRaw("ppt/slideLayouts/slideLayout1.xml", e.parts.SlideLayout)
	if err := add("ppt/slideLayouts/_rels/slideLayout1.xml.rels", relationships(
		xRel{ID: "rId1", Type: relSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
	)); err != nil {
		return nil, err
	}

	for i, s := range p.Slides {
		name := "slide" + strconv.Itoa(i+1) + ".xml"
		if err := add("ppt/slides/"+name, slideMarkup(s)); err != nil {
			return nil, err
		}
		if err := add("ppt/slides/_rels/"+name+".rels", relationships(
			xRel{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		)); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

// marshal encodes v with the standalone XML declaration Office expects.
func marshal(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	const header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
	return append([]byte(header), body...), nil
}

func relationships(rels ...xRel) xRelationships {
	return xRelationships{Xmlns: nsRel, Rels: rels}
}

func rootRels() xRelationships {
	return relationships(
		xRel{ID: "rId1", Type: relOfficeDocument, Target: "ppt/presentation.xml"},
		xRel{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
		xRel{ID: "rId3", Type: relAppProps, Target: "docProps/app.xml"},
	)
}

// presentationRels numbers the master rId1, slides rId2..rId(n+1), then the
// property parts and theme.
func presentationRels(n int) xRelationships {
	rels := []xRel{{ID: "rId1", Type: relSlideMaster, Target: "slideMasters/slideMaster1.xml"}}
	for i := 0; i < n; i++ {
		rels = append(rels, xRel{
			ID:     slideRelID(i),
			Type:   relSlide,
			Target: "slides/slide" + strconv.Itoa(i+1) + ".xml",
		})
	}
	next := n + 2
	for _, r := range []struct{ typ, target string }{
		{relPresProps, "presProps.xml"},
		{relViewProps, "viewProps.xml"},
		{relTheme, "theme/theme1.xml"},
		{relTableStyles, "tableStyles.xml"},
	} {
		rels = append(rels, xRel{ID: "rId" + strconv.Itoa(next), Type: r.typ, Target: r.target})
		next++
	}
	return relationships(rels...)
}

func slideRelID(i int) string {
	return "rId" + strconv.Itoa(i+2)
}

func contentTypes(n int) xTypes {
	t := xTypes{
		Xmlns: nsCT,
		Defaults: []xDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []xOverride{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
			{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
			{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
			{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
			{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
			{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctAppProps},
		},
	}
	for i := 0; i < n; i++ {
		t.Overrides = append(t.Overrides, xOverride{
			PartName:    "/ppt/slides/slide" + strconv.Itoa(i+1) + ".xml",
			ContentType: ctSlide,
		})
	}
	return t
}

func appProps(n int) xAppProps {
	return xAppProps{
		Xmlns:              nsApp,
		Application:        applicationName,
		PresentationFormat: presentationFormat,
		Slides:             n,
	}
}

func coreProps(p *Presentation) xCoreProps {
	ts := p.Created
	if ts.IsZero() {
		ts = time.Unix(0, 0)
	}
	stamp := ts.UTC().Format("2006-01-02T15:04:05Z")
	return xCoreProps{
		XmlnsCP:        nsCP,
		XmlnsDC:        "http://purl.org/dc/elements/1.1/",
		XmlnsDCTerms:   "http://purl.org/dc/terms/",
		XmlnsXSI:       "http://www.w3.org/2001/XMLSchema-instance",
		Title:          p.Title,
		Creator:        p.Author,
		LastModifiedBy: p.Author,
		Revision:       1,
		Created:        xW3CDTF{Type: "dcterms:W3CDTF", Value: stamp},
		Modified:       xW3CDTF{Type: "dcterms:W3CDTF", Value: stamp},
	}
}

func presentation(p *Presentation) xPresentation {
	x := xPresentation{
		XmlnsA:          nsA,
		XmlnsR:          nsR,
		XmlnsP:          nsP,
		SaveSubsetFonts: "1",
		SldMasterIDLst: xSldMasterIDLst{
			IDs: []xSldID{{ID: slideMasterID, RID: "rId1"}},
		},
		SldSz:   xSldSz{CX: p.Width, CY: p.Height, Type: sizeType(p.Width, p.Height)},
		NotesSz: xSize{CX: 6858000, CY: 9144000},
	}
	if len(p.Slides) > 0 {
		ids := make([]xSldID, len(p.Slides))
		for i := range p.Slides {
			ids[i] = xSldID{ID: int64(firstSlideID + i), RID: slideRelID(i)}
		}
		x.SldIDLst = &xSldIDLst{IDs: ids}
	}
	if p.Lang != "" {
		x.DefaultText = &xDefaultTextSty{DefPPr: xDefPPr{DefRPr: xDefRPr{Lang: p.Lang}}}
	}
	return x
}

// sizeType names the well-known 4:3 and 16:9 screen sizes; other sizes are custom.
func sizeType(cx, cy int64) string {
	switch {
	case cx == 9144000 && cy == 6858000:
		return "screen4x3"
	case cx == 12192000 && cy == 6858000:
		return ""
	}
	return "custom"
}

func slideMarkup(s Slide) xSlide {
	x := xSlide{
		XmlnsA: nsA,
		XmlnsR: nsR,
		XmlnsP: nsP,
	}
	tree := &x.CSld.SpTree
	tree.NvGrpSpPr.CNvPr = xCNvPr{ID: 1, Name: ""}
	for i, sh := range s.Shapes {
		tree.Shapes = append(tree.Shapes, shapeMarkup(firstShapeID+i, sh))
	}
	return x
}

func shapeMarkup(id int, sh Shape) xSp {
	sp := xSp{
		NvSpPr: xNvSpPr{CNvPr: xCNvPr{ID: id, Name: sh.Name}},
		SpPr: xSpPr{
			Xfrm: xXfrm{
				Off: xPoint{X: sh.X, Y: sh.Y},
				Ext: xSize{CX: sh.CX, CY: sh.CY},
			},
			PrstGeom: xPrstGeom{Prst: "rect"},
		},
	}

	if sh.Fill != "" {
		sp.SpPr.SolidFill = &xSolidFill{SrgbClr: xSrgbClr{Val: sh.Fill}}
	} else {
		sp.SpPr.NoFill = &empty{}
	}

	if !sh.TextBox {
		sp.SpPr.Ln = &xLn{}
		return sp
	}

	sp.NvSpPr.CNvSpPr.TxBox = "1"
	body := &xTxBody{
		BodyPr: xBodyPr{Wrap: "none", RtlCol: "0", SpAutoFit: &empty{}},
	}
	if sh.WordWrap {
		body.BodyPr.Wrap = "square"
	}
	for _, para := range sh.Paragraphs {
		body.Paragraphs = append(body.Paragraphs, paragraphMarkup(para))
	}
	if len(body.Paragraphs) == 0 {
		// A text body requires at least one paragraph.
		body.Paragraphs = []xP{{}}
	}
	sp.TxBody = body
	return sp
}

func paragraphMarkup(p Paragraph) xP {
	x := xP{}
	if p.Center || p.SpaceAfter > 0 {
		x.PPr = &xPPr{}
		if p.Center {
			x.PPr.Algn = "ctr"
		}
		if p.SpaceAfter > 0 {
			x.PPr.SpcAft = &xSpcAft{SpcPts: xVal{Val: p.SpaceAfter}}
		}
	}

	run := xR{RPr: xRPr{Sz: p.Size, Dirty: "0"}, T: p.Text}
	if p.Bold {
		run.RPr.B = "1"
	}
	if p.Color != "" {
		run.RPr.SolidFill = &xSolidFill{SrgbClr: xSrgbClr{Val: p.Color}}
	}
	x.Runs = []xR{run}
	return x
}
