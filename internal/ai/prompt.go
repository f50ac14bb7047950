package ai

import "fmt"

// buildExtractionPrompt embeds the resume text into the profile extraction
// instructions. The schema named here must stay in sync with
// domain.CandidateProfile's JSON keys.
func buildExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert HR recruitment assistant. Your task is to analyze the following resume text and extract key information in a structured JSON format.

The JSON object MUST have the following keys:
- "name": The full name of the candidate.
- "total_years_experience": An integer representing the total years of professional experience. Estimate if not explicitly stated.
- "technical_skills": A list of key technical skills, technologies, and programming languages.
- "soft_skills": A list of key soft skills like 'communication', 'teamwork', etc.
- "summary": A concise 2-3 sentence summary of the candidate's professional profile.

If a value cannot be found, use null or an empty list.
Ensure your entire response is ONLY the raw JSON object, without any surrounding text or markdown.

Resume Text:
---
%s
---`, resumeText)
}

// buildRankingPrompt embeds the task description and the serialized candidate
// set into the ranking instructions. The whole candidate set rides in a single
// prompt; there is no chunking, so a very large store will eventually outgrow
// the model's context window.
func buildRankingPrompt(taskDescription, candidatesJSON string) string {
	return fmt.Sprintf(`You are a senior hiring manager. Your goal is to evaluate a list of candidates for a specific task and provide a ranked list of the best fits.

THE TASK:
---
%s
---

THE CANDIDATES (in JSON format):
---
%s
---

INSTRUCTIONS:
1. Carefully analyze each candidate's profile against the requirements of THE TASK.
2. For each candidate, provide a "performance_score" from 0 to 100, where 100 is a perfect match. Consider skills, experience, and overall profile.
3. Provide a brief "justification" (1-2 sentences) explaining your reasoning for the score.
4. Your final output MUST be a valid JSON list of objects. Each object must contain "employee_id", "performance_score", and "justification".
5. The list must be sorted in descending order based on the "performance_score".
6. Ensure your entire response is ONLY the raw JSON list, without any surrounding text or markdown.`, taskDescription, candidatesJSON)
}
