// Package htmldoc loads positioned HTML renderings of invoices.
//
// Converters such as pdftohtml render every run of text as an absolutely
// positioned paragraph inside one container per page:
//
//	<meta name="date" content="2023-04-01"/>
//	<div id="page1-div">
//	  <p style="position:absolute;top:112px;left:68px">Line</p>
//	  ...
//	</div>
//
// [Open] and [OpenReader] parse such a document (decoding any declared
// character set) into a [Document]: the invoice date plus, for every page
// container, the [Fragment] values found inside it. A Fragment is a handle
// on a node owned by its Document and must not be used after the Document
// is closed.
//
// [OpenHOCR] loads the hOCR output of an OCR engine into the same shape,
// merging recognized words into phrases so that scanned invoices flow
// through the same table reconstruction.
package htmldoc
