package service

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

type letterData struct {
	Content string
	Date    string
	IsDraft bool
}

// LetterHTML wraps letter text in the firm's print letterhead document,
// ready for PDF printing.
func LetterHTML(content string, isDraft bool) (string, error) {
	return renderTemplate(printTemplate, content, isDraft)
}

// PreviewHTML wraps letter text in the web-optimised preview document.
func PreviewHTML(content string, isDraft bool) (string, error) {
	return renderTemplate(previewTemplate, content, isDraft)
}

func renderTemplate(tmpl *template.Template, content string, isDraft bool) (string, error) {
	var b strings.Builder
	err := tmpl.Execute(&b, letterData{
		Content: content,
		Date:    time.Now().Format("2 January 2006"),
		IsDraft: isDraft,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute letter template: %w", err)
	}
	return b.String(), nil
}

var printTemplate = template.Must(template.New("letter").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    @page {
      margin: 3cm 2.5cm 2.5cm 2.5cm;
      size: A4;
      @bottom-center {
        content: "Page " counter(page) " of " counter(pages);
        font-size: 9pt;
        color: #666;
      }
    }

    body {
      font-family: 'Minion Pro', 'Times New Roman', 'Liberation Serif', serif;
      font-size: 11pt;
      line-height: 1.5;
      color: #1a1a1a;
      margin: 0;
      padding: 0;
      background: white;
      -webkit-print-color-adjust: exact;
      print-color-adjust: exact;
    }

    .letterhead {
      border-bottom: 3px solid #2c5530;
      padding-bottom: 25px;
      margin-bottom: 35px;
    }

    .firm-header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      margin-bottom: 15px;
    }

    .logo-area {
      width: 80px;
      height: 80px;
      border: 2px solid #2c5530;
      border-radius: 8px;
      display: flex;
      align-items: center;
      justify-content: center;
      background: linear-gradient(135deg, #f8f9fa 0%, #e9ecef 100%);
      flex-shrink: 0;
      font-size: 14pt;
      font-weight: bold;
      color: #2c5530;
      text-align: center;
      line-height: 1.1;
    }

    .firm-identity {
      flex-grow: 1;
      text-align: center;
      margin: 0 20px;
    }

    .firm-name {
      font-size: 24pt;
      font-weight: bold;
      color: #2c5530;
      margin-bottom: 8px;
      letter-spacing: 0.5pt;
      text-transform: uppercase;
    }

    .firm-tagline {
      font-size: 10pt;
      color: #666;
      font-style: italic;
      margin-bottom: 12px;
    }

    .firm-credentials {
      font-size: 9pt;
      color: #888;
      line-height: 1.3;
    }

    .contact-info {
      text-align: right;
      font-size: 9pt;
      color: #555;
      line-height: 1.4;
      width: 200px;
      flex-shrink: 0;
    }

    .contact-info strong {
      color: #2c5530;
      display: block;
      margin-bottom: 3px;
    }

    .privilege-notice {
      background: #f8f9fa;
      border-left: 4px solid #2c5530;
      padding: 8px 12px;
      font-size: 8pt;
      color: #555;
      margin-bottom: 25px;
      font-style: italic;
    }

    .document-date {
      text-align: right;
      font-size: 10pt;
      color: #666;
      margin-bottom: 20px;
    }

    .letter-content {
      white-space: pre-wrap;
      line-height: 1.6;
      text-align: justify;
      margin-bottom: 40px;
    }

    .signature-block {
      margin-top: 50px;
      page-break-inside: avoid;
    }

    .signature-area {
      display: flex;
      justify-content: space-between;
      margin-top: 40px;
    }

    .signature-left {
      width: 45%;
    }

    .signature-right {
      width: 45%;
      text-align: right;
    }

    .signature-line {
      border-top: 1px solid #333;
      margin-top: 50px;
      padding-top: 5px;
      font-size: 10pt;
    }

    .partner-details {
      font-size: 9pt;
      color: #666;
      margin-top: 5px;
      line-height: 1.3;
    }

    .footer-compliance {
      margin-top: 60px;
      padding-top: 20px;
      border-top: 1px solid #e0e0e0;
      font-size: 8pt;
      color: #888;
      text-align: center;
      line-height: 1.4;
    }

    .watermark {
      position: fixed;
      top: 50%;
      left: 50%;
      transform: translate(-50%, -50%) rotate(-45deg);
      font-size: 72pt;
      color: rgba(200, 200, 200, 0.15);
      font-weight: bold;
      z-index: -1;
      pointer-events: none;
    }
  </style>
</head>
<body>
  {{if .IsDraft}}<div class="watermark">DRAFT</div>{{end}}

  <div class="letterhead">
    <div class="firm-header">
      <div class="logo-area">LF<br>&amp;<br>A</div>

      <div class="firm-identity">
        <div class="firm-name">LegalFlow &amp; Associates</div>
        <div class="firm-tagline">Excellence in Corporate &amp; Commercial Law</div>
        <div class="firm-credentials">
          Singapore Legal Practice | Law Society Reg: LP2020/001<br>
          GST Reg: 201234567M | ACRA Reg: 202012345Z
        </div>
      </div>

      <div class="contact-info">
        <strong>Singapore Office</strong>
        One Raffles Quay<br>
        #40-01, North Tower<br>
        Singapore 048583<br><br>
        <strong>Contact</strong>
        Tel: +65 6123 4567<br>
        partners@legalflow.sg<br><br>
        <strong>Partners</strong>
        Sarah Chen, LLB, LLM<br>
        Michael Tan, LLB, BCL
      </div>
    </div>
  </div>

  <div class="privilege-notice">
    <strong>PRIVILEGED &amp; CONFIDENTIAL:</strong> This communication is protected by legal professional privilege and is intended solely for the addressee. If you have received this in error, please notify us immediately and delete all copies.
  </div>

  <div class="document-date">{{.Date}}</div>

  <div class="letter-content">{{.Content}}</div>

  <div class="signature-block">
    <div class="signature-area">
      <div class="signature-left">
        <div class="signature-line">Sarah Chen</div>
        <div class="partner-details">
          Senior Partner<br>
          Corporate &amp; Commercial Law<br>
          Direct: +65 6123 4570<br>
          sarah.chen@legalflow.sg
        </div>
      </div>

      <div class="signature-right">
        <div class="signature-line">Michael Tan</div>
        <div class="partner-details">
          Partner<br>
          M&amp;A and Private Equity<br>
          Direct: +65 6123 4571<br>
          michael.tan@legalflow.sg
        </div>
      </div>
    </div>
  </div>

  <div class="footer-compliance">
    <p><strong>Generated by LegalFlow AI Assistant</strong> | Compliant with Singapore Law Society Requirements<br>
    This document has been prepared using advanced AI technology and reviewed for compliance with Singapore legal standards.</p>
  </div>
</body>
</html>`))

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <style>
    body {
      font-family: 'Times New Roman', serif;
      font-size: 12pt;
      line-height: 1.5;
      color: #1a1a1a;
      margin: 20px auto;
      max-width: 800px;
      background: #f5f5f5;
      padding: 20px;
    }

    .document-preview {
      background: white;
      padding: 40px;
      box-shadow: 0 4px 20px rgba(0,0,0,0.1);
      border-radius: 8px;
      position: relative;
    }

    .preview-header {
      background: #2c5530;
      color: white;
      margin: -40px -40px 30px -40px;
      padding: 15px 40px;
      border-radius: 8px 8px 0 0;
      display: flex;
      justify-content: space-between;
      align-items: center;
    }

    .preview-title {
      font-size: 16pt;
      font-weight: bold;
    }

    .preview-badge {
      background: rgba(255,255,255,0.2);
      padding: 5px 12px;
      border-radius: 20px;
      font-size: 10pt;
    }

    .letterhead {
      border-bottom: 3px solid #2c5530;
      padding-bottom: 25px;
      margin-bottom: 35px;
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
    }

    .logo-area {
      width: 60px;
      height: 60px;
      border: 2px solid #2c5530;
      border-radius: 6px;
      display: flex;
      align-items: center;
      justify-content: center;
      font-size: 12pt;
      font-weight: bold;
      color: #2c5530;
      text-align: center;
      line-height: 1.1;
    }

    .firm-identity {
      flex-grow: 1;
      text-align: center;
      margin: 0 20px;
    }

    .firm-name {
      font-size: 20pt;
      font-weight: bold;
      color: #2c5530;
      margin-bottom: 8px;
      letter-spacing: 0.5pt;
    }

    .firm-tagline {
      font-size: 9pt;
      color: #666;
      font-style: italic;
    }

    .contact-info {
      text-align: right;
      font-size: 8pt;
      color: #555;
      line-height: 1.4;
      width: 160px;
    }

    .privilege-notice {
      background: #f8f9fa;
      border-left: 4px solid #2c5530;
      padding: 8px 12px;
      font-size: 8pt;
      color: #555;
      margin-bottom: 25px;
      font-style: italic;
    }

    .document-date {
      text-align: right;
      font-size: 10pt;
      color: #666;
      margin-bottom: 20px;
    }

    .letter-content {
      white-space: pre-wrap;
      line-height: 1.6;
      text-align: justify;
      margin-bottom: 30px;
      font-size: 11pt;
    }

    .signature-area {
      display: flex;
      justify-content: space-between;
      margin-top: 30px;
      font-size: 9pt;
    }

    .signature-line {
      border-top: 1px solid #333;
      margin-top: 30px;
      padding-top: 5px;
    }

    .watermark {
      position: absolute;
      top: 50%;
      left: 50%;
      transform: translate(-50%, -50%) rotate(-45deg);
      font-size: 48pt;
      color: rgba(200, 200, 200, 0.1);
      font-weight: bold;
      z-index: 1;
      pointer-events: none;
    }
  </style>
</head>
<body>
  <div class="document-preview">
    <div class="preview-header">
      <div class="preview-title">Document Preview</div>
      <div class="preview-badge">{{if .IsDraft}}DRAFT VERSION{{else}}FINAL VERSION{{end}}</div>
    </div>

    {{if .IsDraft}}<div class="watermark">DRAFT</div>{{end}}

    <div class="letterhead">
      <div class="logo-area">LF<br>&amp;<br>A</div>

      <div class="firm-identity">
        <div class="firm-name">LEGALFLOW &amp; ASSOCIATES</div>
        <div class="firm-tagline">Excellence in Corporate &amp; Commercial Law</div>
      </div>

      <div class="contact-info">
        <strong>Singapore Office</strong><br>
        One Raffles Quay, #40-01<br>
        Singapore 048583<br>
        Tel: +65 6123 4567
      </div>
    </div>

    <div class="privilege-notice">
      <strong>PRIVILEGED &amp; CONFIDENTIAL:</strong> This communication is protected by legal professional privilege.
    </div>

    <div class="document-date">{{.Date}}</div>

    <div class="letter-content">{{.Content}}</div>

    <div class="signature-area">
      <div>
        <div class="signature-line">Sarah Chen</div>
        <div>Senior Partner</div>
      </div>
      <div style="text-align: right;">
        <div class="signature-line">Michael Tan</div>
        <div>Partner</div>
      </div>
    </div>
  </div>
</body>
</html>`))
