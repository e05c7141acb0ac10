package catalog

import "github.com/cognisync/go-engine/internal/signal"

// #region builtin

// Builtin returns the compiled-in tactic catalog. The content is the
// production psychology playbook; an external YAML file loaded at startup
// replaces it wholesale.
func Builtin() *Catalog {
	return &Catalog{
		tactics:  builtinTactics(),
		crisis:   builtinCrisis(),
		defaults: builtinDefaults(),
	}
}

func key(e signal.Emotion, a signal.Attention, s, g signal.Zone) Key {
	return Key{Emotion: e, Attention: a, StressZone: s, EngagementZone: g}
}

func seq(variants ...string) Entry {
	return Entry{Variants: variants}
}

// #endregion builtin

// #region tactic-content

// Each three-variant entry escalates: initial approach, deeper technique,
// escalation for a persisting state.
func builtinTactics() map[Key]Entry {
	const (
		neutral   = signal.EmotionNeutral
		happy     = signal.EmotionHappy
		sad       = signal.EmotionSad
		angry     = signal.EmotionAngry
		surprised = signal.EmotionSurprised
		disgusted = signal.EmotionDisgusted
		fearful   = signal.EmotionFearful

		high   = signal.AttentionHigh
		medium = signal.AttentionMedium
		lowAtt = signal.AttentionLow

		low = signal.ZoneLow
		mid = signal.ZoneMid
		hi  = signal.ZoneHigh
	)

	return map[Key]Entry{

		// Low attention.
		key(neutral, lowAtt, low, low): seq(
			"Gaze drifted + engagement collapsed — pattern interrupt: call their name, hold 3 seconds of silence, then ask ONE question: 'What's actually on your mind right now?'",
			"Still disengaged after the interrupt. Abandon the current frame entirely. Ask: 'If we set aside everything discussed so far — what do YOU think the real issue is?'",
			"Prolonged disengagement with calm signals = boredom. Use the Ben Franklin effect: ask them to help you with something small. Requested effort re-activates investment.",
		),
		key(neutral, lowAtt, mid, low): seq(
			"Attention lost under stress — they're mentally elsewhere under pressure. Stop all content. Ask: 'What's the one thing that needs to be resolved for you to stay present here?'",
			"Still distracted under stress. Their working memory is saturated. Strip down to ONE sentence, then stay silent — give their brain space to surface what's blocking them.",
			"Sustained stress-distraction. Name it directly: 'It feels like something outside this conversation is competing for your attention.' Naming the distraction often dissolves it.",
		),
		key(neutral, lowAtt, low, mid): seq(
			"Mild attention drift. Deploy the Ben Franklin effect: ask a small favor or genuine opinion to re-activate investment. Effort creates engagement.",
			"Still wandering. Introduce a surprising fact or unexpected reframe to trigger a novelty response and pull focus back.",
			"Try an information gap hook: reveal one piece of information they don't know yet, then pause. The gap creates an itch that re-engages attention automatically.",
		),
		key(neutral, lowAtt, mid, mid): seq(
			"Attention fracturing under moderate stress. Ask: 'If you had to rank the priorities right now, what comes first?' Decision-making forces re-engagement.",
			"Still split-attention. Strip your message to ONE sentence, hold silence, don't fill it. Let them break the silence — what they say next is your real intelligence.",
			"Still distracted. Reframe by asking for their story from the beginning: narrative mode re-engages the prefrontal cortex.",
		),

		// Neutral, analytical.
		key(neutral, high, low, hi): seq(
			"Peak analytical state — focused gaze, calm signals. Introduce your strongest data point and follow with: 'What specific outcome matters most to you?'",
			"Still in analytical mode. Use the 'Columbo technique': ask a deceptively simple question about a complex topic. Their detailed answer reveals exactly what they care about.",
			"Sustained high focus. Deploy your core message and hold silence. Analytically-dominant people perceive silence as confidence, not weakness.",
		),
		key(neutral, high, low, mid): seq(
			"Low stress, high attention — clean slate. Deploy 'commitment and consistency': ask a small yes-question first: 'Would you agree that X is the main priority here?'",
			"Still focused and calm. Use authority anchoring: cite a specific credible source before your point. Authority cues double retention in calm attentive listeners.",
			"Sustained attentive baseline. Introduce a contrast: show where things could be different. Contrast drives decisions even when emotional arousal is low.",
		),
		key(neutral, medium, low, hi): seq(
			"Good engagement with calm physiology — ideal for rapport deepening. Mirror their vocabulary, sentence length, and pace precisely.",
			"Sustained high engagement. Use progressive disclosure — one new piece of information at a time. Scarcity of information increases perceived value.",
			"Long-duration high-engagement state. Ask your most important question now — they are mentally ready to engage at depth.",
		),
		key(neutral, medium, low, mid): seq(
			"Stable moderate engagement — rapport territory. Use strategic mirroring: repeat their last 2-3 words as a question to deepen their explanation and signal deep listening.",
			"Continued stable baseline. Ask: 'How does this connect to what matters most to you?' Open-ended questions build psychological intimacy and increase investment.",
			"Sustained stable state. Deploy a label: 'It seems like you're carefully considering the implications here.' A well-placed label makes them feel deeply understood.",
		),
		key(neutral, medium, mid, mid): seq(
			"Moderate stress with partial engagement — say less, ask more. Questions generate lower cognitive load than statements.",
			"Continued mid-stress. Use a 'no'-oriented question: 'Would it be unreasonable to say you'd prefer to slow down here?' Gives them control and releases pressure.",
			"Persisting mid-stress. Try reframing entirely: introduce a third perspective neither of you has discussed. Novel frames release cognitive tension.",
		),
		key(neutral, high, mid, hi): seq(
			"High attention + rising stress = cognitive load building. FBI technique: slow your speech 20%, drop pitch, label: 'It seems like you're weighing something carefully…'",
			"High engagement under moderate stress. Ask expansively: 'If pressure weren't a factor at all, what would you do?' Removes the stress frame momentarily.",
			"Sustained stress under high attention. Use the 'accusation audit': name every objection you think they have before they voice it. Anticipating resistance disarms it.",
		),

		// Happy.
		key(happy, high, low, hi): seq(
			"Buying signal — smile, upright posture, full attention. This is your close window. Use the assumptive close: 'So the next step would be…' — transition as if agreement is made.",
			"Still at peak positive state. Switch to a choice close: 'Would you prefer to start with X or Y?' Either answer advances things forward.",
			"Sustained happiness + high engagement. Activate social proof NOW: 'Others in your exact situation chose this path because…' Positive states make social proof 3× more effective.",
		),
		key(happy, high, low, mid): seq(
			"Positive affect + focused attention = likability peak. Activate reciprocity: share something exclusive or personal to cement the connection before your key ask.",
			"Still at likability peak. Express a genuine point of commonality — perceived similarity is one of the fastest compliance triggers known.",
			"Sustained positive engagement. Tell a relevant success story about someone similar to them. Story activates mirror neurons and bypasses analytical resistance.",
		),
		key(happy, medium, low, hi): seq(
			"Relaxed happiness + high engagement — perfect for social proof. Reference: 'Others in this situation have found that…' to anchor your proposal in consensus.",
			"Positive state, moderate attention. Ask for their gut reaction: 'What's your instinct on this?' Gut-level questions deepen investment in outcomes.",
			"Sustained positive state. Use future-pacing: 'Imagine six months from now this worked — what changed?' Future projection in a positive state is highly generative.",
		),
		key(happy, high, mid, hi): seq(
			"Joy + slight stress — excitement or performance anxiety. Channel it: 'If this worked perfectly, what would that look like for you?'",
			"Continued positive arousal. Use 'foot in the door': make your smallest possible ask first. Success with small asks primes compliance for larger ones.",
			"Sustained excited state. Connect to their identity: 'This fits someone who values X — and from everything you've said, that's exactly who you are.' Identity framing is deeply motivating.",
		),

		// Surprised.
		key(surprised, high, low, hi): seq(
			"Peak curiosity window — elevated brows, wide eyes. Deliver your single strongest point RIGHT NOW while the dopamine spike is active. Hesitation closes this window in 8 seconds.",
			"Still in curiosity state. Stack a second surprise layer: 'And what makes this even more compelling is…' Stacked surprises compound the dopamine response.",
			"Sustained surprise = genuine fascination. Transition to co-creation: 'What would YOU do with this information?' Co-creation in curiosity state is extremely productive.",
		),
		key(surprised, high, mid, mid): seq(
			"Surprise + moderate stress — new information is creating cognitive dissonance. Hold silence for 5 seconds, then ask: 'What's your first reaction to that?'",
			"Still processing. Ask: 'What part of this is most unexpected to you?' Surfaces their actual objection or point of fascination — critical intelligence.",
			"Continued surprise-processing. Use an accusation audit: name all the doubts you think they're having. Naming eliminates resistance faster than overcoming it.",
		),
		key(surprised, medium, mid, mid): seq(
			"Mild surprise with moderate engagement — processing is happening. Use the accusation audit: preemptively name their concern before they voice it.",
			"Still processing mildly. Ask: 'What would need to be true for this to make complete sense to you?' Question converts surprise into a solvable frame.",
			"Sustained mild surprise. Introduce additional supporting evidence — people in a curiosity state absorb information more quickly than in any other state.",
		),

		// Fearful.
		key(fearful, lowAtt, hi, low): seq(
			"Fight-or-flight activated — body withdrawal, speech pauses. STOP all arguments. Label: 'It seems like this feels overwhelming right now.' Then wait silently.",
			"Still in fear state — amygdala hijacked, logic inaccessible. Offer an off-ramp: 'We don't need to solve this right now. What would make this feel less urgent?'",
			"Prolonged fear. Match your pace to a calm FM DJ voice: very slow, warm, deliberate. Their nervous system will entrain to your calm signals within 90 seconds.",
		),
		key(fearful, medium, hi, low): seq(
			"Stress flooding with partial attention. Ask a 'no'-oriented question: 'Would it be wrong to say you need more time on this?' Restores control.",
			"Fear persisting. Label the internal experience: 'It seems like there's a concern that hasn't been voiced yet.' Creates permission to surface the real objection.",
			"Sustained fear-partial-attention mix. Validate completely BEFORE introducing any counter-information. Validation before information is the FBI protocol.",
		),
		key(fearful, lowAtt, hi, mid): seq(
			"Fear state with moderate engagement — they want to engage but feel unsafe. Validate fully: 'That concern makes complete sense given what you've described.'",
			"Still fearful but engaged. Create psychological safety: 'There's no wrong answer here — I'm genuinely trying to understand your perspective.' Safety unlocks re-engagement.",
			"Prolonged fear-engagement mix. Ask: 'What specifically would need to be true for you to feel confident moving forward?' Converts anxiety into a solvable problem.",
		),
		key(fearful, medium, mid, mid): seq(
			"Mild anxiety — this is buying anxiety, not rejection. Use 'That's right': summarize their position so accurately they feel completely understood.",
			"Continued mild anxiety. Introduce future certainty: describe a specific positive future involving them. Certainty of outcome reduces anxiety biologically.",
			"Persistent low-grade anxiety. Ask: 'What's the one thing that would eliminate that concern?' Directs their energy toward solutions rather than problems.",
		),

		// Angry.
		key(angry, medium, hi, low): seq(
			"Anger spike — jaw tension, restless movement. Do NOT match energy. Lower your volume 30%, let them finish, then label: 'It sounds like this has been frustrating for a long time.'",
			"Anger persisting. Use minimal encouragers — say only 'go on' or 'tell me more'. People cannot sustain anger while feeling genuinely heard.",
			"Sustained anger + low engagement: a core need is unmet. Ask: 'What do you actually need from this situation?' — shift from positions to underlying needs.",
		),
		key(angry, lowAtt, hi, low): seq(
			"Hot anger + disengagement — they've mentally left. Emergency pivot: 'Help me understand — what would have to change for this to work for you?' Ask ONLY about their perspective.",
			"Still angry and gone. Acknowledge without defending: 'I hear that this is not working. That matters.' Pure acknowledgment without defense.",
			"Prolonged anger-disengagement. Give them power: 'What would you do differently if you were in charge of this?' Positions them as the expert.",
		),
		key(angry, medium, hi, mid): seq(
			"Irritation + partial engagement — they feel unheard. Mirror their last key phrase as a question. Mirroring reduces defensiveness by 40% in under 60 seconds.",
			"Still irritated but present. Use the power of apology: take responsibility for something — even small — related to their frustration. Accountability deflates anger.",
			"Continued irritation-engagement mix. Ask: 'What's the most important thing I've missed about your position?' Positions them as expert, you as student.",
		),
		key(angry, high, mid, mid): seq(
			"Agitation + attention still present — channel this energy. Ask a challenge question: 'What's the one thing that would change your mind?' Resistance hides high investment.",
			"Continued engagement under agitation. Name the strength behind their anger: 'The fact you feel this strongly shows how much you care about getting this right.'",
			"Sustained engaged-agitation. Give them a win: 'You're right about X — completely right. Given that, how do we move forward?' Partial agreement creates momentum.",
		),

		// Sad.
		key(sad, lowAtt, low, low): seq(
			"Withdrawal state — low energy, downward gaze. Activate reciprocity through vulnerability: share a relevant personal struggle BEFORE asking anything.",
			"Still withdrawn. Ask for their story: 'What happened that brought you to this point?' Listen for 2 full minutes without interjecting.",
			"Prolonged withdrawal. Introduce possibility slowly: 'If things were just 10% better — what would that look like?' Small future-pacing reopens possibility without pressure.",
		),
		key(sad, medium, low, low): seq(
			"Mild sadness with partial attention. Ask for their story: 'What happened that brought you to this point?' People in sadness bond through narrative.",
			"Continued sad-partial engagement. Deepen empathy: 'What's the hardest part of all of this for you?' The hardest part is where the real need lives.",
			"Sustained ambivalent-sad state. Use the miracle question: 'If you woke up tomorrow and the problem was gone — how would you know?' Bypasses resistance and activates motivation.",
		),
		key(sad, lowAtt, mid, low): seq(
			"Subdued affect signaling low confidence. Use Late Night FM DJ voice: slow, warm, measured. Reflect their emotion before any content: 'This clearly matters to you deeply.'",
			"Still subdued. Introduce possibility: 'What would need to change for this to feel different?' Asking about change implies change is possible — a powerful reframe.",
			"Prolonged subdued state. Ask about the best version of the situation: 'When has this worked well in the past?' Access to positive memory resources often shifts affect.",
		),
		key(sad, medium, mid, mid): seq(
			"Sadness + moderate engagement — ambivalence. Use contrast principle: paint the gap between where they are and where they could be. Emotion follows vision.",
			"Persistent sadness with partial engagement. Deepen empathy: 'What's the hardest part of all of this for you?' Then listen fully without adding content.",
			"Sustained ambivalent-sad state. Use the miracle question: 'If you woke up and the problem was solved — how would you know?' Activates motivation directly.",
		),

		// Disgusted.
		key(disgusted, lowAtt, mid, low): seq(
			"Value mismatch — micro-disgust + low attention. Pivot immediately: 'I sense that landed differently than intended — what part concerns you most?'",
			"Value mismatch persisting. Don't defend the previous frame. Ask what matters most to them and rebuild your position from their anchor point.",
			"Persistent value misalignment. Use inversion: present the OPPOSITE position and ask them to critique it. They'll often argue themselves into your actual position.",
		),
		key(disgusted, medium, mid, mid): seq(
			"Subtle rejection — framing isn't resonating. Framing reboot: present the same idea through a completely different lens — individual vs. team, process vs. results.",
			"Continued value friction. Use 'the third story': how would a neutral third party see this situation? Outside perspective breaks in-frame deadlocks.",
			"Sustained misalignment. Find ONE point of genuine agreement and anchor everything else to it. Agreement on any shared value creates a psychological bridge.",
		),
	}
}

func builtinCrisis() map[CrisisTag]Entry {
	return map[CrisisTag]Entry{
		CrisisEngagementDrop: seq(
			"Engagement dropping fast. Pattern interrupt: ask their opinion directly, or call it out openly: 'I can see we've hit something — what's on your mind?'",
			"Engagement still falling. Abandon your current agenda. Ask: 'What would make this conversation worth your time?' Let their answer restructure everything.",
			"Engagement collapse continuing. Radical transparency: 'I feel like I've lost you somewhere — where did this stop working?' Meta-commentary often resets the conversation.",
		),
		CrisisStressSpike: seq(
			"Stress cascading across all signals. Drop to one sentence, slow your breathing visibly, then give them a choice: 'What feels right to you?' Agency dissolves stress.",
			"Stress still elevated. Remove all demands: 'We don't have to solve this today — what would feel manageable to discuss right now?'",
			"Sustained stress spike. Use the paradoxical injunction: 'Take as long as you need — there's no rush at all.' Removing time pressure often accelerates resolution.",
		),
		CrisisInconsistency: seq(
			"Mixed signals — smiling but stress rising. Leakage event. Deploy: 'What aren't we talking about that we should be?' Name the meta-level directly.",
			"Behavioral inconsistency persisting. Ask: 'Your body seems to be saying something your words aren't — what's the real concern here?'",
			"Continued signal contradiction. Try a soft confrontation: 'I notice you say X but I'm getting a different sense — am I reading that wrong?'",
		),
		CrisisAttentionLost: seq(
			"Attention has left — gaze and posture confirm cognitive disengagement. Stop all content. Call their name once, ask: 'What's the most important thing you need from this conversation right now?' Hold 10 seconds of silence.",
			"Still disengaged. Full pattern interrupt: physically reposition, lower your voice to near-whisper, and say only: 'Let me start over.' Novelty and humility together reset attention.",
			"Prolonged disengagement. This conversation needs an exit and restart. Say: 'Let's pause — when would be a better time to continue this?' Graceful exits preserve future access.",
		),
	}
}

// The generic pool serves purely stable baseline readings, round-robin.
func builtinDefaults() []string {
	return []string{
		"Stable baseline — all signals calm. Deploy strategic silence: stop talking for 5 seconds and observe micro-reactions. Silence reveals resistance that speech hides.",
		"Neutral baseline. Use the 'summary label': restate their key position verbatim and ask '…is that right?' It triggers the 'That's right' trust response.",
		"Stable environment. Plant a calibrated question: 'What matters most to you in making this decision?' Then listen without interrupting for 90 seconds.",
		"Baseline stable. Apply Cialdini's scarcity principle: introduce a genuine constraint — time or availability. Scarcity elevates perceived value even in calm states.",
		"Consistent stable signals. Use progressive disclosure — share your second most compelling point now, saving the strongest for when engagement peaks.",
		"Clean baseline. Use behavioral mirroring: match their posture, gesture frequency, and breathing pace. Synchrony increases trust by 32% and compliance by 26%.",
		"Signals stable. Deploy an I-statement: 'I'm trying to understand your perspective fully before forming my own.' Epistemic humility paradoxically builds authority.",
		"Sustained neutral. Ask a genuine curiosity question — something you actually don't know the answer to about their situation. Authentic curiosity is one of the rarest and most disarming interpersonal signals.",
	}
}

// #endregion tactic-content
