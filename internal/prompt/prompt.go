// Package prompt assembles the role-tagged message sequence sent to the
// reasoning provider.
package prompt

import (
	"mathflow/backend/internal/llm"
	"mathflow/backend/internal/model"
)

// Mode selects which system instruction opens the conversation.
type Mode int

const (
	ModeConversation Mode = iota
	ModeMath
)

func (m Mode) String() string {
	if m == ModeMath {
		return model.ModeMath
	}
	return model.ModeConversation
}

// SystemPromptSimple drives short conversational replies.
const SystemPromptSimple = `Tu es Prof. MathFlow, un professeur de mathématiques amical et pédagogue.
Réponds de manière simple et naturelle aux salutations et questions générales.
Reste bref et encourageant. Si l'utilisateur demande de l'aide en mathématiques, invite-le à poser sa question.
IMPORTANT: N'utilise JAMAIS d'emojis. Utilise LaTeX $...$ pour toute notation mathématique, même simple.`

// SystemPromptMath demands a JSON object matching model.StructuredAnswer.
const SystemPromptMath = `Tu es Prof. MathFlow, un expert en pédagogie des sciences.
Ton rôle est de résoudre des problèmes, d'expliquer les concepts et de proposer des exercices.

DIRECTIVES :
1. LaTeX obligatoire : Utilise $...$ pour l'inline et $$...$$ pour les blocs.
2. Langue : Français uniquement.
3. Structure : Décompose toujours tes solutions en étapes claires.
4. Exercices : Propose TOUJOURS 3 exercices de difficulté croissante (facile, moyen, difficile).
5. IMPORTANT: N'utilise JAMAIS d'emojis.

RÉPONSE FORMAT JSON OBLIGATOIRE :
Tu DOIS répondre UNIQUEMENT avec un JSON valide suivant ce format exact:
{
    "latex": "Équation principale en LaTeX (sans $)",
    "solution": ["Étape 1 de résolution", "Étape 2", "..."],
    "explanation": "Explication pédagogique globale",
    "exercises": [
        {"difficulty": "facile", "problem": "Problème 1 avec LaTeX $...$"},
        {"difficulty": "moyen", "problem": "Problème 2 avec LaTeX $...$"},
        {"difficulty": "difficile", "problem": "Problème 3 avec LaTeX $...$"}
    ],
    "followUp": "Une question pour vérifier la compréhension de l'élève"
}`

// System returns the instruction text for a mode.
func System(mode Mode) string {
	if mode == ModeMath {
		return SystemPromptMath
	}
	return SystemPromptSimple
}

// Build returns the system turn, then history, then the new problem as the
// final user turn. Any history role other than assistant becomes user.
func Build(mode Mode, history []model.ConversationTurn, problem string) []llm.Message {
	msgs := make([]llm.Message, 0, len(history)+2)
	msgs = append(msgs, llm.Message{Role: model.RoleSystem, Content: System(mode)})
	for _, turn := range history {
		role := model.RoleUser
		if turn.Role == model.RoleAssistant {
			role = model.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: turn.Content})
	}
	return append(msgs, llm.Message{Role: model.RoleUser, Content: problem})
}
