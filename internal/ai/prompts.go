package ai

import "fmt"

func summaryPrompt(article string) string {
	return `Você é um especialista em criar resumos jornalísticos concisos e informativos.

Leia o artigo em Markdown abaixo e crie um resumo em Markdown que:
1. Capture os pontos-chave do artigo
2. Tenha entre 150-300 palavras
3. Use formatação markdown apropriada (títulos, listas, negrito, etc.)
4. Seja escrito em português brasileiro
5. Seja estruturado e fácil de ler

ARTIGO:

` + article + `

Gere APENAS o resumo em Markdown, sem explicações adicionais.`
}

func insightsPrompt(article string) string {
	return `Leia o artigo em Markdown abaixo e gere uma lista de sugestões de layout e melhorias. ` +
		`Responda em português. Retorne APENAS um array JSON. Cada item deve ter os campos: ` +
		`"title" (título curto da sugestão) e "description" (descrição curta com a recomendação). ARTIGO:

` + article
}

func scriptPrompt(article string, slides int) string {
	return fmt.Sprintf(`WRITE IN PORTUGUESE! You are a storytelling assistant. Convert the following markdown into EXACTLY %d ordered sections for a slideshow. `+
		`Each section must be an object with keys: "section_time" (number of seconds for comfortable reading), `+
		`"section_text" (a short, engaging caption for the slide), and "section_transcription" (what the narrator should say for that slide). `+
		`Write the sections in a storytelling manner. RETURN ONLY a single JSON object with a top-level "sections" array. `+
		`Example: {"sections":[{"section_time":4,"section_text":"Intro","section_transcription":"Welcome..."}]}

Markdown:
%s`, slides, article)
}
