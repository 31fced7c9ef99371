package util

import (
	"fmt"
	"time"
)

// QuestionnaireCompletedTemplate renders the HTML confirmation sent to a
// patient after their pre-anesthesia questionnaire is submitted.
func QuestionnaireCompletedTemplate(email, name string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <title>Cuestionario completado</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f5f5f7;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f5f5f7; padding: 40px 20px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 12px; overflow: hidden;">
          <tr>
            <td style="padding: 40px 40px 30px; text-align: center; background: linear-gradient(135deg, #3b82f6 0%%, #2563eb 100%%);">
              <h1 style="margin: 0; color: #ffffff; font-size: 28px; font-weight: 600;">Visoria Medical</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 40px;">
              <h2 style="margin: 0 0 20px; color: #111827; font-size: 24px; font-weight: 600;">¡Cuestionario completado con éxito!</h2>
              <p style="margin: 0 0 20px; color: #374151; font-size: 16px; line-height: 1.6;">Hola %s,</p>
              <p style="margin: 0 0 20px; color: #374151; font-size: 16px; line-height: 1.6;">Confirmamos que tu cuestionario preanestésico fue enviado correctamente.</p>
              <p style="margin: 0 0 20px; color: #374151; font-size: 16px; line-height: 1.6;">Tu información ya fue registrada y el equipo médico la revisará antes de tu procedimiento.</p>
              <p style="margin: 0; color: #6b7280; font-size: 14px; line-height: 1.6;">Si necesitas actualizar algún dato, comunícate con tu clínica o con el equipo de atención.</p>
            </td>
          </tr>
          <tr>
            <td style="padding: 30px 40px; background-color: #f9fafb; text-align: center; border-top: 1px solid #e5e7eb;">
              <p style="margin: 0 0 10px; color: #6b7280; font-size: 14px;">Este correo fue enviado a <strong>%s</strong></p>
              <p style="margin: 0; color: #9ca3af; font-size: 12px;">© %d Visoria Medical. Todos los derechos reservados.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`, name, email, time.Now().Year())
}

// FormLinkTemplate renders the HTML email carrying the patient's
// questionnaire link.
func FormLinkTemplate(name, link string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <title>Cuestionario preanestésico</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f5f5f7;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f5f5f7; padding: 40px 20px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 12px; overflow: hidden;">
          <tr>
            <td style="padding: 40px 40px 30px; text-align: center; background: linear-gradient(135deg, #3b82f6 0%%, #2563eb 100%%);">
              <h1 style="margin: 0; color: #ffffff; font-size: 28px; font-weight: 600;">Visoria Medical</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 40px;">
              <h2 style="margin: 0 0 20px; color: #111827; font-size: 24px; font-weight: 600;">Tu cuestionario preanestésico</h2>
              <p style="margin: 0 0 20px; color: #374151; font-size: 16px; line-height: 1.6;">Hola %s,</p>
              <p style="margin: 0 0 20px; color: #374151; font-size: 16px; line-height: 1.6;">Antes de tu procedimiento necesitamos que completes un breve cuestionario sobre tu historia médica.</p>
              <p style="margin: 0 0 30px; text-align: center;">
                <a href="%s" style="display: inline-block; padding: 14px 28px; background-color: #2563eb; color: #ffffff; text-decoration: none; border-radius: 8px; font-size: 16px; font-weight: 600;">Completar cuestionario</a>
              </p>
              <p style="margin: 0; color: #6b7280; font-size: 14px; line-height: 1.6;">Este enlace es personal, no lo compartas con nadie.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`, name, link)
}
